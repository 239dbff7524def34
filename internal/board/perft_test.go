package board

import "testing"

// perft counts leaf nodes at the given depth, the standard way to verify
// move-generation correctness against known node counts.
func perft(b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for _, m := range moves.Slice() {
		b.MakeMove(m)
		nodes += perft(b, depth-1)
		b.UnmakeMove(m)
	}
	return nodes
}

func runPerft(t *testing.T, fen string, cases []struct {
	depth    int
	expected int64
}) {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	for _, tc := range cases {
		tc := tc
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestPerftStartingPosition(t *testing.T) {
	runPerft(t, StartFEN, []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	})
}

// TestPerftKiwipete exercises castling, promotions, and pins together.
func TestPerftKiwipete(t *testing.T) {
	runPerft(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	})
}

// TestPerftPosition3 exercises en-passant edge cases.
func TestPerftPosition3(t *testing.T) {
	runPerft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
		{5, 674624},
	})
}

// TestPerftEnPassantPin is the classic horizontal-discovered-check case: a
// black pawn on e4 can capture en passant on d3, but doing so would remove
// both the e4 and d4 pawns from the fourth rank at once, exposing the black
// king on a4 to the white rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range b.GenerateLegalMoves().Slice() {
		if m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal discovered check)", m)
		}
	}

	runPerft(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	})
}
