package ai

import (
	"math/rand"

	"github.com/lucidrook/chessgo/internal/board"
)

// RandomMover is a reference AI that picks uniformly among its legal moves.
// It exists to exercise the AI contract (private position, asynchronous
// reply over a channel) end to end; it carries no chess knowledge and is
// not a search algorithm.
type RandomMover struct {
	rng *rand.Rand
	pos *board.Board
}

// NewRandomMover returns a RandomMover seeded deterministically, so games
// against it are reproducible given the same seed and move sequence.
func NewRandomMover(seed int64) *RandomMover {
	return &RandomMover{rng: rand.New(rand.NewSource(seed))}
}

// Init implements AI.
func (r *RandomMover) Init(b *board.Board) {
	r.pos = b.Copy()
}

// AcceptMove implements AI.
func (r *RandomMover) AcceptMove(m board.Move, reply chan<- board.Move) {
	go func() {
		if m != board.NoMove {
			r.pos.MakeMove(m)
		}

		moves := r.pos.GenerateLegalMoves()
		if moves.Len() == 0 {
			reply <- board.NoMove
			return
		}

		choice := moves.Get(r.rng.Intn(moves.Len()))
		r.pos.MakeMove(choice)
		reply <- choice
	}()
}
