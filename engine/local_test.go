package engine

import (
	"testing"

	"othello/game"
	"othello/player"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubbornAgent struct {
	move game.Coordinate
	err  error
}

func (a stubbornAgent) FindMove(game.State) (game.Coordinate, error) {
	return a.move, a.err
}

func TestLocalEngineRun(t *testing.T) {
	e, err := LocalEngine([2]player.Agent{player.First{}, player.First{}}, 8, 8)
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	require.Equal(t, 60, e.MaxMoves())

	winner, gameMetric, moveMetrics, err := e.Run()
	require.NoError(t, err)

	require.True(t, e.State.Status().Terminal())
	require.NotEqual(t, game.OutcomeNone, winner)
	require.Equal(t, winner, gameMetric.Winner)
	require.Equal(t, e.ID, gameMetric.ID)
	require.Equal(t, game.DarkSide, gameMetric.StartingSide)
	require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
	require.LessOrEqual(t, gameMetric.TotalMoves, 60)
	require.Equal(t, 64, gameMetric.Dark+gameMetric.Light+gameMetric.Empty)
	require.Equal(t, gameMetric.TotalMoves+4, gameMetric.Dark+gameMetric.Light,
		"Every move should add exactly one disc")

	require.Equal(t, game.DarkSide, moveMetrics[0].Side)
	require.Equal(t, 4, moveMetrics[0].Candidates)
	for i, m := range moveMetrics {
		require.Equal(t, i+1, m.Step)
		require.GreaterOrEqual(t, m.Flipped, 1, "move %d", m.Step)
		require.False(t, m.Fallback)
	}
}

func TestLocalEngineIsDeterministicWithDeterministicAgents(t *testing.T) {
	run := func() []game.Coordinate {
		e, err := LocalEngine([2]player.Agent{player.NewRandom(3), player.NewRandom(4)}, 6, 6)
		require.NoError(t, err)
		_, _, moveMetrics, err := e.Run()
		require.NoError(t, err)

		moves := make([]game.Coordinate, len(moveMetrics))
		for i, m := range moveMetrics {
			moves[i] = m.Move
		}
		return moves
	}
	require.Equal(t, run(), run())
}

func TestLocalEngineFallsBackOnBadAgents(t *testing.T) {
	reference, err := LocalEngine([2]player.Agent{player.First{}, player.First{}}, 8, 8)
	require.NoError(t, err)
	want, _, wantMoves, err := reference.Run()
	require.NoError(t, err)

	bad := [2]player.Agent{
		stubbornAgent{move: game.Coordinate{X: -1, Y: -1}},
		stubbornAgent{err: errors.New("thinking too hard")},
	}
	e, err := LocalEngine(bad, 8, 8)
	require.NoError(t, err)
	got, _, gotMoves, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, want, got)
	require.Len(t, gotMoves, len(wantMoves))
	for i := range gotMoves {
		require.Equal(t, wantMoves[i].Move, gotMoves[i].Move)
		require.True(t, gotMoves[i].Fallback, "move %d should be forced", i+1)
	}
}

func TestLocalEngineRejectsBadSetup(t *testing.T) {
	_, err := LocalEngine([2]player.Agent{player.First{}, player.First{}}, 5, 8)
	require.ErrorIs(t, err, game.ErrInvalidConfiguration)

	_, err = LocalEngine([2]player.Agent{player.First{}, nil}, 8, 8)
	require.Error(t, err)
}
