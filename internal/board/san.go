package board

import "strings"

// IsCapture reports whether m captures a piece on board b, including
// en-passant captures where the captured pawn is not on m's destination
// square.
func (m Move) IsCapture(b *Board) bool {
	if m.IsEnPassant() {
		return true
	}
	return !b.Squares[m.To()].IsEmpty()
}

// ToSAN renders m in Standard Algebraic Notation, given the position it is
// played from. b is not modified.
func (m Move) ToSAN(b *Board) string {
	if m == NoMove {
		return "-"
	}

	from, to := m.From(), m.To()
	piece := b.Squares[from]
	if piece.IsEmpty() {
		return m.String()
	}

	if m.IsCastle() {
		if to.File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	pt := piece.Type()
	var sb strings.Builder

	if pt != Pawn {
		sb.WriteByte(" PNBRQK"[pt])
		sb.WriteString(disambiguateSAN(b, m, pt))
	}

	if m.IsCapture(b) {
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(" PNBRQK"[m.PromotedType()])
	}

	after := b.Copy()
	after.MakeMove(m)
	switch {
	case after.IsCheckmate():
		sb.WriteByte('#')
	case after.InCheck():
		sb.WriteByte('+')
	}

	return sb.String()
}

// disambiguateSAN returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece type to the same
// destination.
func disambiguateSAN(b *Board, m Move, pt PieceType) string {
	from, to := m.From(), m.To()
	us := b.SideToMove

	var candidates []Square
	for _, mv := range b.GenerateLegalMoves().Slice() {
		if mv.To() != to || mv.From() == from {
			continue
		}
		other := b.Squares[mv.From()]
		if other.Color() == us && other.Type() == pt {
			candidates = append(candidates, mv.From())
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + from.File()))
	}
	if !sameRank {
		return from.String()[1:]
	}
	return from.String()
}

// ParseSAN parses a SAN move string against b's legal moves.
func ParseSAN(s string, b *Board) (Move, error) {
	s = strings.TrimSpace(s)

	if s == "O-O" || s == "0-0" {
		rank := 7
		if b.SideToMove == Black {
			rank = 0
		}
		return NewMove(NewSquare(4, rank), NewSquare(6, rank), FlagCastle), nil
	}
	if s == "O-O-O" || s == "0-0-0" {
		rank := 7
		if b.SideToMove == Black {
			rank = 0
		}
		return NewMove(NewSquare(4, rank), NewSquare(2, rank), FlagCastle), nil
	}

	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	promoPiece := NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		switch s[idx+1] {
		case 'N':
			promoPiece = Knight
		case 'B':
			promoPiece = Bishop
		case 'R':
			promoPiece = Rook
		case 'Q':
			promoPiece = Queen
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			pt = Knight
		case 'B':
			pt = Bishop
		case 'R':
			pt = Rook
		case 'Q':
			pt = Queen
		case 'K':
			pt = King
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, errInvalidSAN(s)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, err
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = 7 - int(c-'1')
		}
	}

	for _, m := range b.GenerateLegalMoves().Slice() {
		if m.To() != dest {
			continue
		}
		from := m.From()
		piece := b.Squares[from]
		if piece.Type() != pt {
			continue
		}
		if disambigFile >= 0 && from.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && from.Rank() != disambigRank {
			continue
		}
		if isCapture && !m.IsCapture(b) {
			continue
		}
		if promoPiece != NoPieceType && (!m.IsPromotion() || m.PromotedType() != promoPiece) {
			continue
		}
		return m, nil
	}

	return NoMove, errInvalidSAN(s)
}

func errInvalidSAN(s string) error {
	return &invalidSANError{s}
}

type invalidSANError struct{ s string }

func (e *invalidSANError) Error() string { return "invalid or unmatched SAN move: " + e.s }
