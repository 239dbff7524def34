// Package game is the façade between a UI (or a terminal driver) and the
// board engine: it owns the one live Board, drives the click-to-select,
// click-to-move state machine, and owns the optional AI for either side.
package game

import (
	"log"

	"github.com/lucidrook/chessgo/internal/ai"
	"github.com/lucidrook/chessgo/internal/board"
)

// Effect is the rendering effect a square should show, per spec's
// get_tiles() contract: at most one of five mutually exclusive values.
type Effect int

const (
	EffectNone        Effect = iota
	EffectHighlighted        // the current selection
	EffectSpotted            // an empty legal destination from the selection
	EffectTargeted           // a legal destination from the selection that captures
	EffectChecked            // the side-to-move's king, while in check
)

// String names the effect, e.g. for a renderer's debug logging.
func (e Effect) String() string {
	switch e {
	case EffectHighlighted:
		return "highlighted"
	case EffectSpotted:
		return "spotted"
	case EffectTargeted:
		return "targeted"
	case EffectChecked:
		return "checked"
	default:
		return "none"
	}
}

// Tile is one square's worth of renderable state: what's on it, and
// which rendering effect (if any) it should show.
type Tile struct {
	Square board.Square
	Piece  board.Piece
	Effect Effect
}

// Game drives one game of chess. Only Game ever calls Board.MakeMove on
// Pos; an assigned AI gets its own private copy via ai.AI.Init and must not
// be given a reference to Pos itself.
type Game struct {
	Pos *board.Board

	selected   board.Square
	legalMoves *board.MoveList

	whiteAI ai.AI
	blackAI ai.AI
	aiReply chan board.Move
	thinking bool

	over   bool
	result string

	history []board.Move
}

// New starts a game from fen, or from the standard starting position if
// fen is empty.
func New(fen string) (*Game, error) {
	var b *board.Board
	if fen == "" {
		b = board.NewBoard()
	} else {
		parsed, err := board.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		b = parsed
	}
	return &Game{
		Pos:      b,
		selected: board.NoSquare,
		aiReply:  make(chan board.Move, 1),
	}, nil
}

// SetWhiteAI assigns an AI to play White, handing it a private copy of the
// current position.
func (g *Game) SetWhiteAI(a ai.AI) {
	g.whiteAI = a
	a.Init(g.Pos.Copy())
}

// SetBlackAI assigns an AI to play Black, handing it a private copy of the
// current position.
func (g *Game) SetBlackAI(a ai.AI) {
	g.blackAI = a
	a.Init(g.Pos.Copy())
}

func (g *Game) aiToMove() ai.AI {
	if g.Pos.SideToMove == board.White {
		return g.whiteAI
	}
	return g.blackAI
}

// StartAITurn kicks off the AI assigned to the side to move, if any, and if
// it is not already thinking. lastMove is the move that led to this
// position, or NoMove if the AI is to move first in the game.
func (g *Game) StartAITurn(lastMove board.Move) {
	a := g.aiToMove()
	if a == nil || g.thinking || g.over {
		return
	}
	log.Printf("game: starting AI turn for %s", g.Pos.SideToMove)
	g.thinking = true
	a.AcceptMove(lastMove, g.aiReply)
}

// PollAIMove checks, without blocking, whether the thinking AI has replied,
// and applies its move if so. Call this from whatever event loop drives the
// game (a terminal REPL, a GUI tick). Safe to call when no AI is thinking.
func (g *Game) PollAIMove() (applied bool, m board.Move) {
	if !g.thinking {
		return false, board.NoMove
	}
	select {
	case reply := <-g.aiReply:
		g.thinking = false
		if reply == board.NoMove {
			g.checkGameEnd()
			return false, board.NoMove
		}
		g.applyMove(reply)
		return true, reply
	default:
		return false, board.NoMove
	}
}

// IsAIThinking reports whether an AI reply is outstanding.
func (g *Game) IsAIThinking() bool {
	return g.thinking
}

// HandleTileClicked implements the selection state machine: clicking a
// piece belonging to the side to move selects it and computes its legal
// destinations; clicking a legal destination for the current selection
// plays that move (any promotion defaults to a queen, since there is no
// promotion-choice prompt for a human at this layer); clicking anything
// else clears the selection. Illegal clicks are swallowed silently rather
// than reported as errors.
func (g *Game) HandleTileClicked(sq board.Square) {
	if g.over || g.thinking || g.aiToMove() != nil {
		return
	}

	piece := g.Pos.PieceAt(sq)
	if !piece.IsEmpty() && piece.Color() == g.Pos.SideToMove {
		g.selected = sq
		g.legalMoves = g.legalMovesFrom(sq)
		return
	}

	if g.selected != board.NoSquare && g.legalMoves != nil {
		if m, ok := g.legalMoves.FindPromotion(g.selected, sq, board.Queen); ok {
			g.applyMove(m)
			return
		}
	}

	g.clearSelection()
}

func (g *Game) legalMovesFrom(sq board.Square) *board.MoveList {
	filtered := &board.MoveList{}
	for _, m := range g.Pos.GenerateLegalMoves().Slice() {
		if m.From() == sq {
			filtered.Add(m)
		}
	}
	return filtered
}

func (g *Game) clearSelection() {
	g.selected = board.NoSquare
	g.legalMoves = nil
}

func (g *Game) applyMove(m board.Move) {
	g.Pos.MakeMove(m)
	g.history = append(g.history, m)
	g.clearSelection()
	g.checkGameEnd()
}

func (g *Game) checkGameEnd() {
	switch {
	case g.Pos.IsCheckmate():
		g.over = true
		g.result = g.Pos.SideToMove.Other().String() + " wins by checkmate"
	case g.Pos.IsStalemate():
		g.over = true
		g.result = "draw by stalemate"
	case g.Pos.IsThreefoldRepetition():
		g.over = true
		g.result = "draw by threefold repetition"
	case g.Pos.IsFiftyMoveDraw():
		g.over = true
		g.result = "draw by fifty-move rule"
	case g.Pos.IsInsufficientMaterial():
		g.over = true
		g.result = "draw by insufficient material"
	}
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return g.over
}

// Result returns a human-readable description of how the game ended, or ""
// if it has not.
func (g *Game) Result() string {
	return g.result
}

// MoveHistory returns every move played so far, in order.
func (g *Game) MoveHistory() []board.Move {
	return g.history
}

// GetTiles returns the renderable state of all 64 squares.
func (g *Game) GetTiles() [64]Tile {
	var tiles [64]Tile
	for sq := board.Square(0); sq < 64; sq++ {
		tiles[sq] = Tile{Square: sq, Piece: g.Pos.Squares[sq]}
	}

	if g.Pos.InCheck() {
		tiles[g.Pos.KingSquareFor(g.Pos.SideToMove)].Effect = EffectChecked
	}

	if g.legalMoves != nil {
		for _, m := range g.legalMoves.Slice() {
			if m.IsCapture(g.Pos) {
				tiles[m.To()].Effect = EffectTargeted
			} else {
				tiles[m.To()].Effect = EffectSpotted
			}
		}
	}

	if g.selected != board.NoSquare {
		tiles[g.selected].Effect = EffectHighlighted
	}

	return tiles
}
