package player

import (
	"othello/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no legal moves")

// Agent chooses a move for the side to move in state.
type Agent interface {
	FindMove(state game.State) (game.Coordinate, error)
}

// Random picks uniformly among the legal moves. It is not safe for
// concurrent use; give every goroutine its own agent.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent whose choices are reproducible for a seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state game.State) (game.Coordinate, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Coordinate{}, errors.Wrapf(ErrNoMoves, "%s", state.Status())
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// First always plays the first legal move in iteration order.
type First struct{}

func (First) FindMove(state game.State) (game.Coordinate, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Coordinate{}, errors.Wrapf(ErrNoMoves, "%s", state.Status())
	}
	return moves[0], nil
}
