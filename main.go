package main

import (
	"flag"
	"os"

	"othello/experiments"
	"othello/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("name", "selfplay", "Experiment name, used for the output directory")
	width := flag.Int("width", meta.BOARD_WIDTH, "Board width (even, at least 4)")
	height := flag.Int("height", meta.BOARD_HEIGHT, "Board height (even, at least 4)")
	games := flag.Int("games", meta.GAMES, "Number of self-play games")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of games played in parallel")
	seed := flag.Uint64("seed", meta.SEED, "Base seed of the random agents")
	out := flag.String("out", meta.OUT_DIR, "Directory for game and move records, empty to skip")
	noMetrics := flag.Bool("no-metrics", false, "Skip the outcome tally")
	level := flag.String("log-level", "info", "Log level")
	pretty := flag.Bool("pretty", false, "Human readable console logs")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)
	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	summary, err := experiments.Run(experiments.Config{
		Name:       *name,
		Games:      *games,
		Goroutines: *goroutines,
		Width:      *width,
		Height:     *height,
		Seed:       *seed,
		OutDir:     *out,
		NoMetrics:  *noMetrics,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	if *noMetrics {
		return
	}
	log.Info().
		Int("games", summary.Games).
		Int("dark", summary.DarkWins).
		Int("light", summary.LightWins).
		Int("draws", summary.Draws).
		Int("moves", summary.Moves).
		Dur("duration", summary.Duration).
		Msg("summary")
}
