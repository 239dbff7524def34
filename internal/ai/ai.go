// Package ai defines the contract a chess engine must satisfy to play
// through the game facade, plus a minimal reference implementation. Any
// search algorithm, evaluation function, or opening book is out of scope
// here; an AI is free to implement AcceptMove however it likes as long as
// it respects the contract's concurrency shape.
package ai

import "github.com/lucidrook/chessgo/internal/board"

// AI is implemented by anything that can play one side of a game. The
// facade is the only owner of the game's live Board; an AI receives its
// own private copy through Init and must not touch the facade's board.
type AI interface {
	// Init hands the AI a private copy of the starting position. The AI
	// owns this copy for the lifetime of the game.
	Init(b *board.Board)

	// AcceptMove tells the AI which move was just played (NoMove if the
	// AI is to move first), and asks it to choose its own reply. The AI
	// must apply m to its private position, then compute and send its
	// reply on reply from a separate goroutine so the caller's thread is
	// never blocked waiting on a search. Exactly one value is sent on
	// reply per call, NoMove if the AI has no legal move.
	AcceptMove(m board.Move, reply chan<- board.Move)
}
