package board

import "fmt"

// Square is a board square index, 0-63. Index = rank*8 + file, where rank 0
// is the 8th rank (top of the board as drawn) and file 0 is the a-file.
// So a8 = 0 and h1 = 63.
type Square uint8

// Square constants for all 64 squares, in board order (rank 8 down to rank
// 1, a-file to h-file within each rank).
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// File returns the file of the square, 0 (a) to 7 (h).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the top-down rank index of the square: 0 for the 8th rank,
// 7 for the 1st rank.
func (sq Square) Rank() int {
	return int(sq) / 8
}

// NewSquare builds a Square from a file (0=a..7=h) and a top-down rank index
// (0 = 8th rank .. 7 = 1st rank).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// String returns algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	file := byte('a' + sq.File())
	rank := byte('1' + (7 - sq.Rank()))
	return string([]byte{file, rank})
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	file := int(s[0] - 'a')
	algRank := int(s[1] - '1') // 0 = rank 1 .. 7 = rank 8
	if file < 0 || file > 7 || algRank < 0 || algRank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(file, 7-algRank), nil
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Direction indexes the eight ray directions used by sliding pieces and king
// moves. 0-3 are orthogonal (rook directions), 4-7 are diagonal (bishop
// directions); a queen uses all eight.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
	DirUpRight
	DirDownRight
	DirDownLeft
	DirUpLeft
	numDirections
)

// DirectionOffsets gives the raw one-step square-index delta for each
// Direction, in board order (rank 0 = top, as Square is indexed).
var DirectionOffsets = [8]int{-8, +1, +8, -1, -7, +9, +7, -9}

// squaresToEdge[sq][dir] is the number of single steps available in that
// direction before falling off the board.
var squaresToEdge [64][8]int

// directionBetween[from][to] is the signed one-step offset (one of the
// values in DirectionOffsets) that reaches to from from by repeated
// application, or 0 if from and to do not lie on a common rank, file, or
// diagonal.
var directionBetween [64][64]int

// chebyshevDistance[from][to] and manhattanDistance[from][to] are derived
// square-to-square distance tables.
var chebyshevDistance [64][64]int
var manhattanDistance [64][64]int

func init() {
	initSquaresToEdge()
	initDirectionBetween()
	initDistances()
}

func initSquaresToEdge() {
	for sq := Square(0); sq < 64; sq++ {
		up := sq.Rank()
		down := 7 - sq.Rank()
		left := sq.File()
		right := 7 - sq.File()

		squaresToEdge[sq][DirUp] = up
		squaresToEdge[sq][DirRight] = right
		squaresToEdge[sq][DirDown] = down
		squaresToEdge[sq][DirLeft] = left
		squaresToEdge[sq][DirUpRight] = min(up, right)
		squaresToEdge[sq][DirDownRight] = min(down, right)
		squaresToEdge[sq][DirDownLeft] = min(down, left)
		squaresToEdge[sq][DirUpLeft] = min(up, left)
	}
}

func initDirectionBetween() {
	for from := Square(0); from < 64; from++ {
		for to := Square(0); to < 64; to++ {
			if from == to {
				continue
			}
			df := to.File() - from.File()
			dr := to.Rank() - from.Rank()
			if df != 0 && dr != 0 && abs(df) != abs(dr) {
				continue // not aligned on a rank, file, or diagonal
			}
			directionBetween[from][to] = sign(dr)*8 + sign(df)
		}
	}
}

func initDistances() {
	for from := Square(0); from < 64; from++ {
		for to := Square(0); to < 64; to++ {
			df := abs(to.File() - from.File())
			dr := abs(to.Rank() - from.Rank())
			chebyshevDistance[from][to] = max(df, dr)
			manhattanDistance[from][to] = df + dr
		}
	}
}

// SquaresToEdge returns the number of single steps available from sq in the
// given direction before reaching the edge of the board.
func SquaresToEdge(sq Square, dir Direction) int {
	return squaresToEdge[sq][dir]
}

// DirectionBetween returns the signed single-step offset from `from` to `to`
// if they share a rank, file, or diagonal, or 0 otherwise.
func DirectionBetween(from, to Square) int {
	return directionBetween[from][to]
}

// OnCommonRay reports whether from and to lie on a shared rank, file, or
// diagonal (either direction along the ray counts).
func OnCommonRay(from, to Square) bool {
	return directionBetween[from][to] != 0
}

// ChebyshevDistance returns the Chebyshev (king-move) distance between two
// squares.
func ChebyshevDistance(from, to Square) int {
	return chebyshevDistance[from][to]
}

// ManhattanDistance returns the Manhattan (taxicab) distance between two
// squares.
func ManhattanDistance(from, to Square) int {
	return manhattanDistance[from][to]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
