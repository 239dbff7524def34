package board

// MakeMove applies m to the board: it updates Squares, the piece lists,
// occupancy bitboards, and the Zobrist hash incrementally, pushes an undo
// word (the pre-move castle rights, en-passant file and halfmove clock, plus
// the piece m captures) onto StateStack, and records the resulting hash in
// HashHistory. The caller must only pass moves produced by
// GenerateLegalMoves against this exact position.
func (b *Board) MakeMove(m Move) {
	us := b.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := b.Squares[from]
	pt := piece.Type()

	var capturedSq Square
	var capturedPiece Piece
	if m.IsEnPassant() {
		capturedSq = epCapturedSquare(to, us)
		capturedPiece = b.Squares[capturedSq]
	} else {
		capturedSq = to
		capturedPiece = b.Squares[to]
	}

	oldRights := b.castleRights()
	oldEPFile := b.EnPassantFile()
	oldHalfmove := b.HalfmoveClock()

	undoWord := uint32(oldRights&stateCastleMask)<<stateCastleShift |
		uint32(oldEPFile&stateEPFileMask)<<stateEPFileShift |
		uint32(capturedPiece&stateCapturedMask)<<stateCapturedShift |
		uint32(oldHalfmove&stateHalfmoveMask)<<stateHalfmoveShift
	b.StateStack = append(b.StateStack, undoWord)

	if capturedPiece != NoPiece {
		b.removePiece(capturedSq)
		b.Hash ^= zobristKeyForPiece(them, capturedPiece.Type(), capturedSq)
	}

	if m.IsPromotion() {
		b.removePiece(from)
		promoted := NewPiece(us, m.PromotedType())
		b.setPiece(promoted, to)
		b.Hash ^= zobristKeyForPiece(us, Pawn, from)
		b.Hash ^= zobristKeyForPiece(us, m.PromotedType(), to)
	} else {
		b.movePiece(from, to)
		b.Hash ^= zobristKeyForPiece(us, pt, from)
		b.Hash ^= zobristKeyForPiece(us, pt, to)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(from, to)
		b.movePiece(rookFrom, rookTo)
		b.Hash ^= zobristKeyForPiece(us, Rook, rookFrom)
		b.Hash ^= zobristKeyForPiece(us, Rook, rookTo)
	}

	b.Hash ^= zobristKeyForCastling(oldRights)
	newRights := oldRights
	if pt == King {
		if us == White {
			newRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			newRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	newRights = clearCastleRightsForSquare(newRights, from)
	newRights = clearCastleRightsForSquare(newRights, to)
	b.setCastleRights(newRights)
	b.Hash ^= zobristKeyForCastling(newRights)

	if oldEPFile < 8 {
		b.Hash ^= zobristKeyForEnPassant(oldEPFile)
	}
	b.setEnPassantFile(stateNoEPFile)
	if m.IsDoublePush() {
		epFile := from.File()
		b.setEnPassantFile(epFile)
		b.Hash ^= zobristKeyForEnPassant(epFile)
	}

	if pt == Pawn || capturedPiece != NoPiece {
		b.setHalfmoveClock(0)
	} else {
		b.setHalfmoveClock(oldHalfmove + 1)
	}

	if us == Black {
		b.FullMoveNumber++
	}
	b.Ply++
	b.SideToMove = them
	b.Hash ^= zobristBlackMove
	b.HashHistory = append(b.HashHistory, b.Hash)
}

// UnmakeMove reverses the most recent MakeMove call, which must have been
// for m. It restores Squares, the piece lists, occupancy bitboards, the
// hash, and the packed state word from StateStack in O(1).
func (b *Board) UnmakeMove(m Move) {
	them := b.SideToMove
	us := them.Other()
	from, to := m.From(), m.To()

	b.HashHistory = b.HashHistory[:len(b.HashHistory)-1]
	b.Hash = b.HashHistory[len(b.HashHistory)-1]

	undoWord := b.StateStack[len(b.StateStack)-1]
	b.StateStack = b.StateStack[:len(b.StateStack)-1]

	oldRights := uint8(undoWord>>stateCastleShift) & stateCastleMask
	oldEPFile := int(uint8(undoWord>>stateEPFileShift) & stateEPFileMask)
	capturedPiece := Piece(uint8(undoWord>>stateCapturedShift) & stateCapturedMask)
	oldHalfmove := int(uint8(undoWord>>stateHalfmoveShift) & stateHalfmoveMask)

	b.setCastleRights(oldRights)
	b.setEnPassantFile(oldEPFile)
	b.setHalfmoveClock(oldHalfmove)

	if us == Black {
		b.FullMoveNumber--
	}
	b.Ply--

	if m.IsPromotion() {
		b.removePiece(to)
		b.setPiece(NewPiece(us, Pawn), from)
	} else {
		b.movePiece(to, from)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(from, to)
		b.movePiece(rookTo, rookFrom)
	}

	if capturedPiece != NoPiece {
		capturedSq := to
		if m.IsEnPassant() {
			capturedSq = epCapturedSquare(to, us)
		}
		b.setPiece(capturedPiece, capturedSq)
	}

	b.SideToMove = us
}

// castleRookSquares returns the rook's from/to squares for a castle move
// whose king moved from `from` to `to`.
func castleRookSquares(from, to Square) (Square, Square) {
	rank := from.Rank()
	if to.File() == 6 {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// clearCastleRightsForSquare drops whichever castle right corresponds to a
// rook's home square, called for both the from and to square of every move
// since a rook can lose its right either by moving or by being captured.
func clearCastleRightsForSquare(rights uint8, sq Square) uint8 {
	switch sq {
	case A1:
		rights &^= WhiteQueenSideCastle
	case H1:
		rights &^= WhiteKingSideCastle
	case A8:
		rights &^= BlackQueenSideCastle
	case H8:
		rights &^= BlackKingSideCastle
	}
	return rights
}
