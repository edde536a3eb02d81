package engine

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/player"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Local runs two in-process agents against each other.
type Local struct {
	ID     string
	State  *game.GameState
	Agents [2]Adapter // indexed by side: Dark, Light
}

// LocalEngine sets up a game on a width x height board. agents[0] plays Dark.
func LocalEngine(agents [2]player.Agent, width, height int) (*Local, error) {
	for i, a := range agents {
		if a == nil {
			return nil, errors.Errorf("agent %d is nil", i)
		}
	}
	state, err := game.NewGameState(width, height)
	if err != nil {
		return nil, err
	}

	return &Local{
		ID:    uuid.NewString(),
		State: state,
		Agents: [2]Adapter{
			{Agent: agents[0]},
			{Agent: agents[1]},
		},
	}, nil
}

// MaxMoves bounds a game on the board: every move fills one of the empty cells.
func (e *Local) MaxMoves() int {
	return e.State.Counts().Empty
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:           e.ID,
		StartingSide: e.State.Turn(),
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", e.ID).Msgf("%s is starting", e.State.Player())

	maxMoves := e.MaxMoves()
	for step := 1; !e.State.Status().Terminal(); step++ {
		if step > maxMoves {
			return game.OutcomeNone, gameMetric, moveMetrics,
				errors.Errorf("game %s did not end within %d moves", e.ID, maxMoves)
		}

		side := e.State.Turn()
		start := time.Now()
		move, fallback := e.agentFor(side).FindMove(e.State)

		before := e.State.Counts()
		next, err := e.State.Apply(move)
		if err != nil {
			return game.OutcomeNone, gameMetric, moveMetrics, errors.Wrapf(err, "game %s step %d", e.ID, step)
		}
		after := next.Counts()

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:       step,
			Side:       side,
			Move:       move,
			Candidates: len(e.State.LegalMoves()),
			Flipped:    owned(after, side) - owned(before, side) - 1,
			Passed:     next.Passed(),
			Fallback:   fallback,
			Duration:   time.Since(start),
		})

		log.Debug().Str("game", e.ID).Int("step", step).Msgf("%s played %v", side, move)
		if next.Passed() {
			log.Debug().Str("game", e.ID).Msgf("%s has no move and passes", side.Other())
		}

		e.State = next
	}

	counts := e.State.Counts()
	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.Dark, gameMetric.Light, gameMetric.Empty = counts.Dark, counts.Light, counts.Empty
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Str("game", e.ID).Msgf("game over after %d moves: %s (dark=%d light=%d)",
		gameMetric.TotalMoves, e.State.Status(), counts.Dark, counts.Light)

	return winner, gameMetric, moveMetrics, nil
}

func owned(c game.Counts, side game.Side) int {
	if side == game.DarkSide {
		return c.Dark
	}
	return c.Light
}

func (e *Local) agentFor(side game.Side) *Adapter {
	if side == game.DarkSide {
		return &e.Agents[0]
	}
	return &e.Agents[1]
}

// Adapter guards the engine against misbehaving agents.
type Adapter struct {
	Agent player.Agent
}

// FindMove asks the agent for a move and falls back to the first legal move
// when the agent fails or answers with an illegal cell.
func (a *Adapter) FindMove(state *game.GameState) (move game.Coordinate, fallback bool) {
	candidate, err := a.Agent.FindMove(state)
	if err == nil && state.IsLegal(candidate) {
		return candidate, false
	}

	fallbackMoves := state.LegalMoves()
	if len(fallbackMoves) == 0 {
		panic("no legal moves in a running game")
	}
	log.Warn().Err(err).Msgf("agent returned an invalid move %v for %s, forcing %v",
		candidate, state.Turn(), fallbackMoves[0])
	return fallbackMoves[0], true
}
