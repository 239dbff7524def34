package board

import "testing"

func TestParseFENStartingPosition(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.SideToMove != White {
		t.Errorf("SideToMove = %v, want White", b.SideToMove)
	}
	if !b.CanCastle(White, true) || !b.CanCastle(White, false) {
		t.Error("expected White to have both castling rights")
	}
	if !b.CanCastle(Black, true) || !b.CanCastle(Black, false) {
		t.Error("expected Black to have both castling rights")
	}
	if b.EnPassantSquare() != NoSquare {
		t.Errorf("EnPassantSquare = %v, want NoSquare", b.EnPassantSquare())
	}
	if b.PieceAt(E1) != WhiteKing {
		t.Errorf("PieceAt(E1) = %v, want WhiteKing", b.PieceAt(E1))
	}
	if b.PieceAt(E8) != BlackKing {
		t.Errorf("PieceAt(E8) = %v, want BlackKing", b.PieceAt(E8))
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 5 10",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		got := b.ToFEN()
		if got != fen {
			t.Errorf("round trip mismatch: got %q, want %q", got, fen)
		}
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	if _, err := ParseFEN("not a fen"); err == nil {
		t.Error("expected an error for a malformed FEN")
	}
}

func TestParseFENHashMatchesComputeHash(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if b.Hash != b.computeHash() {
		t.Error("Hash after ParseFEN does not match a fresh computeHash")
	}
	if len(b.HashHistory) != 1 || b.HashHistory[0] != b.Hash {
		t.Error("ParseFEN should seed HashHistory with the starting hash")
	}
}
