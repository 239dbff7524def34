package board

import "testing"

func TestCheckmateBackRank(t *testing.T) {
	b, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if !b.InCheck() {
		t.Fatal("expected black king to be in check")
	}
	if !b.IsCheckmate() {
		t.Errorf("expected checkmate, got %d legal moves: %v", b.GenerateLegalMoves().Len(), b.GenerateLegalMoves().Slice())
	}
}

func TestNotCheckmateKingCanCapture(t *testing.T) {
	b, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if b.IsCheckmate() {
		t.Error("expected the king to escape by capturing the rook")
	}
	if !b.GenerateLegalMoves().Contains(NewMove(H8, G8, FlagNone)) {
		t.Error("expected Kxg8 to be a legal move")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no moves and is not in check.
	b, err := ParseFEN("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if b.InCheck() {
		t.Fatal("expected black not to be in check")
	}
	if !b.IsStalemate() {
		t.Errorf("expected stalemate, got %d legal moves: %v", b.GenerateLegalMoves().Len(), b.GenerateLegalMoves().Slice())
	}
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	// White king e1, white bishop e2 pinned by black rook on e8.
	b, err := ParseFEN("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := b.GenerateLegalMoves()
	for _, m := range moves.Slice() {
		if m.From() == E2 && m.To() != E3 && m.To() != E4 && m.To() != E5 && m.To() != E6 && m.To() != E7 {
			t.Errorf("pinned bishop should only move along the e-file, got move to %s", m.To())
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Contrived double-check: black king h8 attacked by rook on h1 and
	// knight on f7 simultaneously.
	b, err := ParseFEN("7k/5N2/8/8/8/8/8/K6R b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !b.InCheck() {
		t.Fatal("expected black to be in check")
	}
	for _, m := range b.GenerateLegalMoves().Slice() {
		if m.From() != H8 {
			t.Errorf("in double check, only king moves should be legal, got move from %s", m.From())
		}
	}
}
