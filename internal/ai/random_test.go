package ai

import (
	"testing"

	"github.com/lucidrook/chessgo/internal/board"
)

func TestRandomMoverRepliesWithLegalMove(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	mover := NewRandomMover(42)
	mover.Init(b)

	reply := make(chan board.Move, 1)
	mover.AcceptMove(board.NoMove, reply)

	m := <-reply
	if m == board.NoMove {
		t.Fatal("expected a legal move from the starting position")
	}
	if !b.GenerateLegalMoves().Contains(m) {
		t.Errorf("RandomMover replied with %v, not a legal move", m)
	}
}

func TestRandomMoverPlaysItsOwnCopy(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	mover := NewRandomMover(1)
	mover.Init(b)

	reply := make(chan board.Move, 1)
	mover.AcceptMove(board.NoMove, reply)
	<-reply

	if b.PieceAt(board.E2) != board.WhitePawn || b.Ply != 0 {
		t.Error("RandomMover must not mutate the board handed to Init")
	}
}

func TestRandomMoverReportsNoLegalMoves(t *testing.T) {
	// Black to move, checkmated: no legal replies.
	b, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mover := NewRandomMover(7)
	mover.Init(b)

	reply := make(chan board.Move, 1)
	mover.AcceptMove(board.NoMove, reply)

	if m := <-reply; m != board.NoMove {
		t.Errorf("expected NoMove from a checkmated position, got %v", m)
	}
}
