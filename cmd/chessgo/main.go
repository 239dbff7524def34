package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/lucidrook/chessgo/internal/ai"
	"github.com/lucidrook/chessgo/internal/board"
	"github.com/lucidrook/chessgo/internal/game"
	"github.com/lucidrook/chessgo/internal/storage"
)

var (
	fen      = flag.String("fen", "", "starting position in FEN (defaults to the standard starting position)")
	aiWhite  = flag.Bool("ai-white", false, "let the reference AI play White")
	aiBlack  = flag.Bool("ai-black", true, "let the reference AI play Black")
	dbDir    = flag.String("db", "", "override the game-record storage directory")
	maxMoves = flag.Int("max-moves", 300, "stop the game after this many plies, as a safety valve")
)

func main() {
	flag.Parse()

	g, err := game.New(*fen)
	if err != nil {
		log.Fatalf("chessgo: %v", err)
	}

	if *aiWhite {
		g.SetWhiteAI(ai.NewRandomMover(1))
	}
	if *aiBlack {
		g.SetBlackAI(ai.NewRandomMover(2))
	}

	store, err := storage.Open(*dbDir)
	if err != nil {
		log.Fatalf("chessgo: opening storage: %v", err)
	}
	defer store.Close()

	startFEN := g.Pos.ToFEN()
	gameID := strconv.FormatInt(time.Now().UnixNano(), 36)

	fmt.Println(g.Pos)
	playToCompletion(g)

	rec := storage.Record{
		StartFEN: startFEN,
		Result:   g.Result(),
	}
	for _, m := range g.MoveHistory() {
		rec.Moves = append(rec.Moves, m.String())
	}
	if err := store.SaveGame(gameID, rec); err != nil {
		log.Printf("chessgo: saving game record: %v", err)
	}
	if err := store.RecordResult(outcomeOf(g)); err != nil {
		log.Printf("chessgo: recording result: %v", err)
	}

	fmt.Println(g.Result())
}

// playToCompletion drives the game loop: AI turns run asynchronously and
// are polled non-blocking, a human turn (no AI assigned to the side to
// move) picks uniformly among the legal moves so the driver can run
// unattended end to end without a terminal UI. The pick is played through
// HandleTileClicked, so a chosen underpromotion is played as a queen.
func playToCompletion(g *game.Game) {
	rng := rand.New(rand.NewSource(3))
	last := board.NoMove

	for ply := 0; ply < *maxMoves && !g.GameOver(); ply++ {
		g.StartAITurn(last)
		if g.IsAIThinking() {
			for !g.GameOver() {
				if applied, m := g.PollAIMove(); applied {
					last = m
					fmt.Println(g.Pos)
					break
				}
				if !g.IsAIThinking() {
					break
				}
				time.Sleep(time.Millisecond)
			}
			continue
		}

		moves := g.Pos.GenerateLegalMoves()
		if moves.Len() == 0 {
			break
		}
		choice := moves.Get(rng.Intn(moves.Len()))
		from, to := choice.From(), choice.To()
		g.HandleTileClicked(from)
		g.HandleTileClicked(to)
		if h := g.MoveHistory(); len(h) > 0 {
			last = h[len(h)-1]
		}
		fmt.Println(g.Pos)
	}
}

func outcomeOf(g *game.Game) storage.Outcome {
	if g.Pos.IsCheckmate() {
		if g.Pos.SideToMove == board.White {
			return storage.OutcomeBlackWin
		}
		return storage.OutcomeWhiteWin
	}
	return storage.OutcomeDraw
}
