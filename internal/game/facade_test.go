package game

import (
	"testing"
	"time"

	"github.com/lucidrook/chessgo/internal/ai"
	"github.com/lucidrook/chessgo/internal/board"
)

func TestHandleTileClickedSelectsThenMoves(t *testing.T) {
	g, err := New("")
	if err != nil {
		t.Fatal(err)
	}

	g.HandleTileClicked(board.E2)
	tiles := g.GetTiles()
	if tiles[board.E2].Effect != EffectHighlighted {
		t.Fatalf("expected e2 to become highlighted, got %v", tiles[board.E2].Effect)
	}
	if tiles[board.E4].Effect != EffectSpotted {
		t.Errorf("expected e4 to be a spotted (empty) legal target, got %v", tiles[board.E4].Effect)
	}

	g.HandleTileClicked(board.E4)
	if g.Pos.PieceAt(board.E4) != board.WhitePawn {
		t.Error("expected the pawn to have moved to e4")
	}
	if g.Pos.PieceAt(board.E2) != board.NoPiece {
		t.Error("expected e2 to be empty after the move")
	}
	if g.Pos.SideToMove != board.Black {
		t.Error("expected the side to move to flip to Black")
	}
}

func TestHandleTileClickedIllegalClickClearsSelection(t *testing.T) {
	g, err := New("")
	if err != nil {
		t.Fatal(err)
	}

	g.HandleTileClicked(board.E2)
	g.HandleTileClicked(board.E5) // not a legal destination for the e2 pawn

	tiles := g.GetTiles()
	for sq, tile := range tiles {
		if tile.Effect == EffectHighlighted {
			t.Errorf("expected no square highlighted after an illegal click, got %v", board.Square(sq))
		}
	}
	if g.Pos.PieceAt(board.E2) != board.WhitePawn {
		t.Error("illegal click must not move the piece")
	}
}

func TestHandleTileClickedDefaultsPromotionToQueen(t *testing.T) {
	g, err := New("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	g.HandleTileClicked(board.A7)
	g.HandleTileClicked(board.A8)

	if g.Pos.PieceAt(board.A8) != board.WhiteQueen {
		t.Errorf("expected a8 to hold a white queen, got %v", g.Pos.PieceAt(board.A8))
	}
}

func TestAITurnReportsMoveAsynchronously(t *testing.T) {
	g, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	g.SetBlackAI(ai.NewRandomMover(5))

	g.HandleTileClicked(board.E2)
	g.HandleTileClicked(board.E4)

	g.StartAITurn(board.NewMove(board.E2, board.E4, board.FlagDoublePush))
	if !g.IsAIThinking() {
		t.Fatal("expected the AI to be marked thinking after StartAITurn")
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if applied, _ := g.PollAIMove(); applied {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("AI did not reply with a move within the deadline")
}

func TestGetTilesMarksCheckedKing(t *testing.T) {
	// Black king e8 is in check from the white rook on e1.
	g, err := New("4k3/8/8/8/8/8/8/4R2K b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	tiles := g.GetTiles()
	if tiles[board.E8].Effect != EffectChecked {
		t.Errorf("expected e8 (king in check) to have EffectChecked, got %v", tiles[board.E8].Effect)
	}
	if tiles[board.E1].Effect == EffectChecked {
		t.Error("the checking rook's own square should not be marked checked")
	}
}

func TestGetTilesMarksTargetedCapture(t *testing.T) {
	// White pawn e4 can capture the black knight on d5.
	g, err := New("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	g.HandleTileClicked(board.E4)
	tiles := g.GetTiles()
	if tiles[board.D5].Effect != EffectTargeted {
		t.Errorf("expected d5 (capture target) to have EffectTargeted, got %v", tiles[board.D5].Effect)
	}
}

func TestCheckGameEndDetectsCheckmate(t *testing.T) {
	g, err := New("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	g.HandleTileClicked(board.E1)
	g.HandleTileClicked(board.E8)

	if !g.GameOver() {
		t.Fatal("expected the back-rank mate to end the game")
	}
	if g.Result() == "" {
		t.Error("expected a non-empty result string")
	}
}
