package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := Config{Name: "selfplay", Games: 12, Goroutines: 4, Width: 6, Height: 6, Seed: 7}

	summary, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.Games, summary.Games)
	require.Equal(t, cfg.Games, summary.DarkWins+summary.LightWins+summary.Draws)
	require.Greater(t, summary.Moves, 0)
	require.LessOrEqual(t, summary.Moves, cfg.Games*(6*6-4))

	again, err := Run(Config{Name: "selfplay", Games: 12, Goroutines: 1, Width: 6, Height: 6, Seed: 7})
	require.NoError(t, err)
	require.Equal(t, summary.DarkWins, again.DarkWins, "Outcomes should not depend on the number of goroutines")
	require.Equal(t, summary.LightWins, again.LightWins)
	require.Equal(t, summary.Moves, again.Moves)
}

func TestRunWritesRecords(t *testing.T) {
	out := t.TempDir()
	cfg := Config{Name: "records", Games: 3, Goroutines: 2, Width: 4, Height: 4, Seed: 1, OutDir: out}

	summary, err := Run(cfg)
	require.NoError(t, err)

	dirs, err := filepath.Glob(filepath.Join(out, "records", "*"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)

	games := readCSV(t, filepath.Join(dirs[0], "game_records.csv"))
	require.Len(t, games, cfg.Games+1, "One header and one row per game")
	require.Equal(t, "id", games[0][0])
	require.Equal(t, "random-1", games[1][1])
	require.Equal(t, "random-2", games[1][2])
	require.Equal(t, game.DarkSide.String(), games[1][3])

	moves := readCSV(t, filepath.Join(dirs[0], "move_records.csv"))
	require.Len(t, moves, summary.Moves+1)
	require.Equal(t, games[1][0], moves[1][0], "Move records should reference their game")
}

func TestRunKeepsEarlierRecords(t *testing.T) {
	out := t.TempDir()
	cfg := Config{Name: "repeat", Games: 2, Goroutines: 2, Width: 4, Height: 4, Seed: 3, OutDir: out}

	_, err := Run(cfg)
	require.NoError(t, err)
	_, err = Run(cfg)
	require.NoError(t, err)

	dirs, err := filepath.Glob(filepath.Join(out, "repeat", "*"))
	require.NoError(t, err)
	require.Len(t, dirs, 2, "Each run should write into its own directory")
	for _, dir := range dirs {
		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, cfg.Games+1)
	}
}

func TestRunWithoutMetrics(t *testing.T) {
	out := t.TempDir()
	cfg := Config{Name: "quiet", Games: 3, Goroutines: 2, Width: 4, Height: 4, Seed: 5, OutDir: out, NoMetrics: true}

	summary, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, metrics.Summary{}, summary)

	dirs, err := filepath.Glob(filepath.Join(out, "quiet", "*"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	games := readCSV(t, filepath.Join(dirs[0], "game_records.csv"))
	require.Len(t, games, cfg.Games+1, "Records should still be written")
}

func TestRunRejectsBadConfig(t *testing.T) {
	cases := []Config{
		{Name: "no games", Games: 0, Goroutines: 1, Width: 8, Height: 8},
		{Name: "no workers", Games: 1, Goroutines: 0, Width: 8, Height: 8},
		{Name: "odd board", Games: 1, Goroutines: 1, Width: 7, Height: 8},
	}
	for _, cfg := range cases {
		t.Run(cfg.Name, func(t *testing.T) {
			_, err := Run(cfg)
			require.Error(t, err)
		})
	}

	_, err := Run(Config{Name: "tiny", Games: 1, Goroutines: 1, Width: 2, Height: 2})
	require.ErrorIs(t, err, game.ErrInvalidConfiguration)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
