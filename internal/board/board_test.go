package board

import "testing"

func TestMakeUnmakeMoveRestoresHash(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	startHash := b.Hash

	moves := b.GenerateLegalMoves()
	for _, m := range moves.Slice() {
		b.MakeMove(m)
		if b.Hash == startHash {
			t.Errorf("hash did not change after MakeMove(%v)", m)
		}
		b.UnmakeMove(m)
		if b.Hash != startHash {
			t.Errorf("UnmakeMove(%v) left Hash = %d, want %d", m, b.Hash, startHash)
		}
		if len(b.HashHistory) != 1 {
			t.Errorf("UnmakeMove(%v) left HashHistory length %d, want 1", m, len(b.HashHistory))
		}
	}
}

func TestMakeUnmakeMoveRestoresState(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	before := b.ToFEN()

	for _, m := range b.GenerateLegalMoves().Slice() {
		b.MakeMove(m)
		b.UnmakeMove(m)
		if got := b.ToFEN(); got != before {
			t.Fatalf("UnmakeMove(%v) did not fully restore position: got %q, want %q", m, got, before)
		}
	}
}

func TestMakeMoveDeepCopyIndependence(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	clone := b.Copy()

	m := NewMove(E2, E4, FlagDoublePush)
	b.MakeMove(m)

	if clone.PieceAt(E2) != WhitePawn {
		t.Error("Copy() was mutated by a MakeMove on the original")
	}
	if clone.Hash != clone.computeHash() {
		t.Error("clone hash inconsistent after original was mutated")
	}
}

func TestCheckInvariantsStartingPosition(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("CheckInvariants panicked on the starting position: %v", r)
		}
	}()
	b.CheckInvariants()
}

func TestCheckInvariantsAfterMoves(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("CheckInvariants panicked after playing moves: %v", r)
		}
	}()

	for i := 0; i < 6; i++ {
		moves := b.GenerateLegalMoves()
		if moves.Len() == 0 {
			break
		}
		b.MakeMove(moves.Get(0))
		b.CheckInvariants()
	}
}

func TestFiftyMoveAndRepetitionDraws(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	shuttle := []Move{
		NewMove(H1, H2, FlagNone),
		NewMove(E8, D8, FlagNone),
		NewMove(H2, H1, FlagNone),
		NewMove(D8, E8, FlagNone),
	}
	for i := 0; i < 3; i++ {
		for _, m := range shuttle {
			b.MakeMove(m)
		}
	}
	if !b.IsThreefoldRepetition() {
		t.Error("expected threefold repetition after repeating the same position three times")
	}
	if b.IsFiftyMoveDraw() {
		t.Errorf("halfmove clock %d should not trigger the fifty-move rule", b.HalfmoveClock())
	}

	fifty, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 100 80")
	if err != nil {
		t.Fatal(err)
	}
	if !fifty.IsFiftyMoveDraw() {
		t.Error("expected a fifty-move draw with the halfmove clock at 100")
	}
}
