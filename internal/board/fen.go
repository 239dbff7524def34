package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a fresh Board.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	b := &Board{FullMoveNumber: 1}
	b.KingSquare[colorIndex(White)] = NoSquare
	b.KingSquare[colorIndex(Black)] = NoSquare
	b.setEnPassantFile(stateNoEPFile)

	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(b, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		b.setEnPassantFile(sq.File())
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		b.setHalfmoveClock(hmc)
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		b.FullMoveNumber = fmn
	}

	b.Hash = b.computeHash()
	b.HashHistory = append(b.HashHistory, b.Hash)

	return b, nil
}

// parsePiecePlacement parses the piece-placement field of a FEN string. FEN
// ranks are listed from rank 8 to rank 1, which is exactly the top-down rank
// order Board.Squares uses, so rank index i in the FEN maps directly to
// top-down rank i.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for rank, rankStr := range ranks {
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", 8-rank)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			b.setPiece(piece, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", 8-rank, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling-rights field of a FEN string.
func parseCastlingRights(b *Board, castling string) error {
	if castling == "-" {
		b.setCastleRights(NoCastling)
		return nil
	}

	var rights uint8
	for _, c := range castling {
		switch c {
		case 'K':
			rights |= WhiteKingSideCastle
		case 'Q':
			rights |= WhiteQueenSideCastle
		case 'k':
			rights |= BlackKingSideCastle
		case 'q':
			rights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}
	b.setCastleRights(rights)
	return nil
}

// castleRightsString renders the 4-bit castle-rights nibble in FEN order.
func castleRightsString(rights uint8) string {
	if rights == NoCastling {
		return "-"
	}
	s := ""
	if rights&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if rights&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if rights&BlackKingSideCastle != 0 {
		s += "k"
	}
	if rights&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// ToFEN renders the board as a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.Squares[NewSquare(file, rank)]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castleRightsString(b.castleRights()))

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassantSquare().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoveNumber))

	return sb.String()
}
