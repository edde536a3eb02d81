package player

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestRandomPicksLegalMoves(t *testing.T) {
	state, err := game.NewGameState(8, 8)
	require.NoError(t, err)
	agent := NewRandom(42)

	seen := map[game.Coordinate]bool{}
	for i := 0; i < 200; i++ {
		move, err := agent.FindMove(state)
		require.NoError(t, err)
		require.True(t, state.IsLegal(move), "Move %v should be legal", move)
		seen[move] = true
	}
	require.Len(t, seen, 4, "Every opening move should eventually be picked")
}

func TestRandomIsReproducible(t *testing.T) {
	play := func(seed uint64) []game.Coordinate {
		state, err := game.NewGameState(8, 8)
		require.NoError(t, err)
		agent := NewRandom(seed)

		var moves []game.Coordinate
		for !state.Status().Terminal() {
			move, err := agent.FindMove(state)
			require.NoError(t, err)
			moves = append(moves, move)
			state, err = state.Apply(move)
			require.NoError(t, err)
		}
		return moves
	}
	require.Equal(t, play(7), play(7))
}

func TestFirst(t *testing.T) {
	state, err := game.NewGameState(8, 8)
	require.NoError(t, err)

	move, err := First{}.FindMove(state)
	require.NoError(t, err)
	require.Equal(t, state.LegalMoves()[0], move)
}

func TestNoMoves(t *testing.T) {
	b, err := game.FromRows("XXXX", "XXXX", "OOOO", "OOOO")
	require.NoError(t, err)
	state, err := game.FromBoard(b, game.DarkSide)
	require.NoError(t, err)

	_, err = NewRandom(1).FindMove(state)
	require.ErrorIs(t, err, ErrNoMoves)
	_, err = First{}.FindMove(state)
	require.ErrorIs(t, err, ErrNoMoves)
}
