// Package board implements the chess position engine: piece and square
// encoding, move encoding, piece lists, board state, FEN, Zobrist hashing,
// and the legal move generator.
package board

// PieceType is the 3-bit type code of a piece. 0 is reserved for "no piece".
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := [7]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// Color is the 2-bit color mask: exactly one of White or Black is set on any
// non-empty piece.
type Color uint8

const (
	White Color = 0b01
	Black Color = 0b10
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 0b11
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// colorShift is the bit position at which the color mask sits inside a Piece.
const colorShift = 3

// Piece packs a Color and a PieceType into a single 5-bit value: bits 0-2
// hold the type code, bits 3-4 hold the color mask. The zero value, NoPiece,
// represents an empty square.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<colorShift | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<colorShift | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<colorShift | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<colorShift | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<colorShift | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<colorShift | Piece(King)

	BlackPawn   Piece = Piece(Black)<<colorShift | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<colorShift | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<colorShift | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<colorShift | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<colorShift | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<colorShift | Piece(King)
)

// NewPiece packs a color and type into a Piece.
func NewPiece(c Color, pt PieceType) Piece {
	return Piece(c)<<colorShift | Piece(pt)
}

// Type returns the piece's type code (bits 0-2).
func (p Piece) Type() PieceType {
	return PieceType(p & 0b111)
}

// Color returns the piece's color mask (bits 3-4).
func (p Piece) Color() Color {
	return Color(p >> colorShift)
}

// IsEmpty reports whether this is the empty-square sentinel.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// IsDiagonalSlider reports whether the piece slides along diagonals
// (bishop or queen).
func (p Piece) IsDiagonalSlider() bool {
	t := p.Type()
	return t == Bishop || t == Queen
}

// IsOrthogonalSlider reports whether the piece slides along ranks/files
// (rook or queen).
func (p Piece) IsOrthogonalSlider() bool {
	t := p.Type()
	return t == Rook || t == Queen
}

// String returns the FEN character for the piece (uppercase for white,
// lowercase for black), or " " for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	c := p.Type().Char()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece, or NoPiece if the
// character is not a recognized piece letter.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
