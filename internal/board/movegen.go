package board

// GenerateLegalMoves produces every legal move for the side to move.
//
// Unlike a pseudo-legal-then-filter generator, this builds the attack map
// and the set of pinned pieces up front, then generates only moves that are
// already known to be legal: king moves test the destination against attacks
// computed with the king removed from the board (so it cannot hide behind
// itself on an open ray), non-king moves are restricted to the current
// check-resolution mask, and pinned pieces are restricted to the ray they
// are pinned along.
func (b *Board) GenerateLegalMoves() *MoveList {
	ml := &MoveList{}

	us := b.SideToMove
	them := us.Other()
	ksq := b.KingSquare[colorIndex(us)]

	checkers, checkMask := b.computeCheckersAndMask(ksq, us)
	pinned, pinDir := b.computePins(ksq, us)

	b.generateKingMoves(ml, us, them)
	b.generateCastlingMoves(ml, us, them)

	if checkers.PopCount() >= 2 {
		return ml // double check: only the king can move
	}

	b.generatePawnMoves(ml, us, them, checkMask, pinned, pinDir)
	b.generateKnightMoves(ml, us, checkMask, pinned)
	b.generateSliderMoves(ml, us, checkMask, pinned, pinDir, Bishop)
	b.generateSliderMoves(ml, us, checkMask, pinned, pinDir, Rook)
	b.generateSliderMoves(ml, us, checkMask, pinned, pinDir, Queen)

	return ml
}

// HasLegalMoves reports whether the side to move has at least one legal
// move.
func (b *Board) HasLegalMoves() bool {
	return b.GenerateLegalMoves().Len() > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}

// IsDraw reports whether the position is a draw by stalemate, the
// fifty-move rule, threefold repetition, or insufficient material. Draw
// offers are not handled.
func (b *Board) IsDraw() bool {
	if b.IsStalemate() {
		return true
	}
	if b.IsFiftyMoveDraw() {
		return true
	}
	if b.IsThreefoldRepetition() {
		return true
	}
	return b.IsInsufficientMaterial()
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate. It recognises only K vs K and K plus one minor piece
// vs K; other drawn material sets (such as same-coloured bishops) report
// false.
func (b *Board) IsInsufficientMaterial() bool {
	wi, bi := colorIndex(White), colorIndex(Black)
	if b.Bitboards[wi][Pawn]|b.Bitboards[bi][Pawn] != Empty ||
		b.Bitboards[wi][Rook]|b.Bitboards[bi][Rook] != Empty ||
		b.Bitboards[wi][Queen]|b.Bitboards[bi][Queen] != Empty {
		return false
	}

	wMinor := b.Bitboards[wi][Knight].PopCount() + b.Bitboards[wi][Bishop].PopCount()
	bMinor := b.Bitboards[bi][Knight].PopCount() + b.Bitboards[bi][Bishop].PopCount()

	if wMinor == 0 && bMinor == 0 {
		return true // K vs K
	}
	if wMinor <= 1 && bMinor == 0 {
		return true // K+minor vs K
	}
	if bMinor <= 1 && wMinor == 0 {
		return true
	}
	return false
}

// computeCheckersAndMask returns the pieces currently giving check to the
// side-to-move's king, plus the resolution mask: the set of squares a
// non-king move must land on to get the king out of check (the checking
// piece's square, plus, for a sliding checker, the squares between it and
// the king). With no checkers the mask is unrestricted; with two or more,
// it is empty since only a king move can resolve a double check.
func (b *Board) computeCheckersAndMask(ksq Square, us Color) (Bitboard, Bitboard) {
	them := us.Other()
	checkers := b.AttackersByColor(ksq, them, b.All)

	if checkers.Empty() {
		return checkers, ^Empty
	}
	if checkers.PopCount() >= 2 {
		return checkers, Empty
	}

	checkerSq := checkers.LSB()
	mask := SquareBB(checkerSq)
	checker := b.Squares[checkerSq]
	if checker.IsDiagonalSlider() || checker.IsOrthogonalSlider() {
		mask |= Between(ksq, checkerSq)
	}
	return checkers, mask
}

// pinScanDir pairs one of the 8 ray directions from the king with the
// enemy pieces that pin along it.
type pinScanDir struct {
	dir     Direction
	sliders Bitboard
}

// computePins scans all 8 directions from the king outward. A pin exists
// when the first piece encountered belongs to us and the next piece beyond
// it is an enemy slider attacking along that same direction. pinDir[sq]
// holds the direction offset (one of DirectionOffsets) the pinned piece on
// sq may still move along.
func (b *Board) computePins(ksq Square, us Color) (Bitboard, [64]int) {
	them := us.Other()
	ti := colorIndex(them)
	orth := b.Bitboards[ti][Rook] | b.Bitboards[ti][Queen]
	diag := b.Bitboards[ti][Bishop] | b.Bitboards[ti][Queen]

	dirs := [8]pinScanDir{
		{DirUp, orth}, {DirRight, orth}, {DirDown, orth}, {DirLeft, orth},
		{DirUpRight, diag}, {DirDownRight, diag}, {DirDownLeft, diag}, {DirUpLeft, diag},
	}

	var pinned Bitboard
	var pinDir [64]int

	for _, ds := range dirs {
		friendly := NoSquare
		cur := ksq
		for step := 0; step < SquaresToEdge(ksq, ds.dir); step++ {
			cur = Square(int(cur) + DirectionOffsets[ds.dir])
			p := b.Squares[cur]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == us {
				if friendly != NoSquare {
					break // a second friendly piece shields any pin on this ray
				}
				friendly = cur
				continue
			}
			if friendly != NoSquare && ds.sliders.IsSet(cur) {
				pinned = pinned.Set(friendly)
				pinDir[friendly] = DirectionOffsets[ds.dir]
			}
			break // any piece, friend or foe, stops the ray
		}
	}

	return pinned, pinDir
}

func (b *Board) generateKingMoves(ml *MoveList, us, them Color) {
	ksq := b.KingSquare[colorIndex(us)]
	occWithoutKing := b.All &^ SquareBB(ksq)
	targets := KingAttacks(ksq) &^ b.Occupied[colorIndex(us)]
	targets.ForEach(func(to Square) {
		if b.AttackersByColor(to, them, occWithoutKing) == 0 {
			ml.Add(NewMove(ksq, to, FlagNone))
		}
	})
}

func (b *Board) generateCastlingMoves(ml *MoveList, us, them Color) {
	ksq := b.KingSquare[colorIndex(us)]
	if SquareAttackedBy(b, ksq, them) {
		return
	}
	rank := ksq.Rank()

	kingSide, queenSide := WhiteKingSideCastle, WhiteQueenSideCastle
	if us == Black {
		kingSide, queenSide = BlackKingSideCastle, BlackQueenSideCastle
	}

	if b.castleRights()&kingSide != 0 {
		f, g := NewSquare(5, rank), NewSquare(6, rank)
		if b.Squares[f].IsEmpty() && b.Squares[g].IsEmpty() &&
			!SquareAttackedBy(b, f, them) && !SquareAttackedBy(b, g, them) {
			ml.Add(NewMove(ksq, g, FlagCastle))
		}
	}
	if b.castleRights()&queenSide != 0 {
		d, c, bsq := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)
		if b.Squares[d].IsEmpty() && b.Squares[c].IsEmpty() && b.Squares[bsq].IsEmpty() &&
			!SquareAttackedBy(b, d, them) && !SquareAttackedBy(b, c, them) {
			ml.Add(NewMove(ksq, c, FlagCastle))
		}
	}
}

func pawnCaptureDirs(c Color) [2]Direction {
	if c == White {
		return [2]Direction{DirUpLeft, DirUpRight}
	}
	return [2]Direction{DirDownLeft, DirDownRight}
}

func (b *Board) addPawnMove(ml *MoveList, from, to Square, promoRank int) {
	if to.Rank() == promoRank {
		ml.Add(NewPromotion(from, to, Queen))
		ml.Add(NewPromotion(from, to, Rook))
		ml.Add(NewPromotion(from, to, Bishop))
		ml.Add(NewPromotion(from, to, Knight))
		return
	}
	ml.Add(NewMove(from, to, FlagNone))
}

func (b *Board) generatePawnMoves(ml *MoveList, us, them Color, checkMask Bitboard, pinned Bitboard, pinDir [64]int) {
	ci := colorIndex(us)
	ksq := b.KingSquare[ci]
	pawns := b.Lists[ci][pieceListSlot(Pawn)].Squares()

	pushDir := DirUp
	startRank, promoRank := 6, 0
	if us == Black {
		pushDir = DirDown
		startRank, promoRank = 1, 7
	}

	for _, from := range pawns {
		isPinned := pinned.IsSet(from)
		myPinDir := pinDir[from]

		if SquaresToEdge(from, pushDir) > 0 {
			one := Square(int(from) + DirectionOffsets[pushDir])
			if b.Squares[one].IsEmpty() {
				if !isPinned || DirectionBetween(ksq, one) == myPinDir {
					if checkMask.IsSet(one) {
						b.addPawnMove(ml, from, one, promoRank)
					}
					if from.Rank() == startRank && SquaresToEdge(one, pushDir) > 0 {
						two := Square(int(one) + DirectionOffsets[pushDir])
						if b.Squares[two].IsEmpty() && checkMask.IsSet(two) {
							ml.Add(NewMove(from, two, FlagDoublePush))
						}
					}
				}
			}
		}

		for _, capDir := range pawnCaptureDirs(us) {
			if SquaresToEdge(from, capDir) == 0 {
				continue
			}
			to := Square(int(from) + DirectionOffsets[capDir])

			if to == b.EnPassantSquare() {
				if b.epMoveIsLegal(from, to, us) {
					ml.Add(NewMove(from, to, FlagEnPassant))
				}
				continue
			}

			target := b.Squares[to]
			if target.IsEmpty() || target.Color() != them {
				continue
			}
			if isPinned && DirectionBetween(ksq, to) != myPinDir {
				continue
			}
			if !checkMask.IsSet(to) {
				continue
			}
			b.addPawnMove(ml, from, to, promoRank)
		}
	}
}

func (b *Board) generateKnightMoves(ml *MoveList, us Color, checkMask Bitboard, pinned Bitboard) {
	ci := colorIndex(us)
	knights := b.Lists[ci][pieceListSlot(Knight)].Squares()
	for _, from := range knights {
		if pinned.IsSet(from) {
			continue // a pinned knight never has a legal move
		}
		targets := KnightAttacks(from) &^ b.Occupied[ci] & checkMask
		targets.ForEach(func(to Square) {
			ml.Add(NewMove(from, to, FlagNone))
		})
	}
}

func (b *Board) generateSliderMoves(ml *MoveList, us Color, checkMask Bitboard, pinned Bitboard, pinDir [64]int, pt PieceType) {
	ci := colorIndex(us)
	ksq := b.KingSquare[ci]
	pieces := b.Lists[ci][pieceListSlot(pt)].Squares()

	for _, from := range pieces {
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, b.All)
		case Rook:
			attacks = RookAttacks(from, b.All)
		default:
			attacks = QueenAttacks(from, b.All)
		}
		attacks &^= b.Occupied[ci]
		attacks &= checkMask

		if pinned.IsSet(from) {
			dir := pinDir[from]
			var filtered Bitboard
			attacks.ForEach(func(to Square) {
				if DirectionBetween(ksq, to) == dir {
					filtered = filtered.Set(to)
				}
			})
			attacks = filtered
		}

		attacks.ForEach(func(to Square) {
			ml.Add(NewMove(from, to, FlagNone))
		})
	}
}

// epCapturedSquare returns the square of the pawn captured by an en-passant
// move landing on `to`, given the color of the capturing pawn. Both
// MakeMove and the generator's discovered-check probe share this so the two
// can never disagree about which square the captured pawn sits on.
func epCapturedSquare(to Square, mover Color) Square {
	if mover == White {
		return Square(int(to) + 8)
	}
	return Square(int(to) - 8)
}

// epMoveIsLegal probes whether an en-passant capture from `from` to `to`
// leaves the mover's king safe, including the rare case where it does not:
// both the capturing pawn and the captured pawn leave their shared rank at
// once, which can expose the king to a rook or queen along a rank that
// looked blocked before the move. It simulates the capture by mutating
// Squares only (not the bitboards or piece lists, which stay valid for
// every other move generated in the same pass), checks king safety with a
// squares-only attack scan, then restores Squares exactly as found.
func (b *Board) epMoveIsLegal(from, to Square, us Color) bool {
	them := us.Other()
	capturedSq := epCapturedSquare(to, us)
	ksq := b.KingSquare[colorIndex(us)]

	movingPiece := b.Squares[from]
	capturedPiece := b.Squares[capturedSq]

	b.Squares[from] = NoPiece
	b.Squares[capturedSq] = NoPiece
	b.Squares[to] = movingPiece

	safe := !b.squareAttackedByMailbox(ksq, them)

	b.Squares[from] = movingPiece
	b.Squares[capturedSq] = capturedPiece
	b.Squares[to] = NoPiece

	return safe
}

// squareAttackedByMailbox reports whether sq is attacked by a piece of
// color `by`, reading only Board.Squares (not the bitboards), so it gives a
// correct answer under a Squares-only mutation such as epMoveIsLegal's.
func (b *Board) squareAttackedByMailbox(sq Square, by Color) bool {
	for _, dir := range orthogonalDirs {
		cur := sq
		for step := 0; step < SquaresToEdge(sq, dir); step++ {
			cur = Square(int(cur) + DirectionOffsets[dir])
			p := b.Squares[cur]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == by && p.IsOrthogonalSlider() {
				return true
			}
			break
		}
	}
	for _, dir := range diagonalDirs {
		cur := sq
		for step := 0; step < SquaresToEdge(sq, dir); step++ {
			cur = Square(int(cur) + DirectionOffsets[dir])
			p := b.Squares[cur]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == by && p.IsDiagonalSlider() {
				return true
			}
			break
		}
	}
	for _, d := range knightDeltas {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		p := b.Squares[NewSquare(f, r)]
		if p.Color() == by && p.Type() == Knight {
			return true
		}
	}
	for dir := Direction(0); dir < numDirections; dir++ {
		if SquaresToEdge(sq, dir) == 0 {
			continue
		}
		p := b.Squares[Square(int(sq)+DirectionOffsets[dir])]
		if p.Color() == by && p.Type() == King {
			return true
		}
	}

	attacked := false
	PawnAttacks(sq, by.Other()).ForEach(func(s Square) {
		p := b.Squares[s]
		if p.Color() == by && p.Type() == Pawn {
			attacked = true
		}
	})
	return attacked
}
