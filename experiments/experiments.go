package experiments

import (
	"strconv"
	"sync"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Config describes a batch of random-vs-random self-play games.
type Config struct {
	Name       string
	Games      int
	Goroutines int
	Width      int
	Height     int
	Seed       uint64
	OutDir     string // records are only written when set
	NoMetrics  bool   // skip the outcome tally, Run then returns an empty Summary
}

func (c Config) validate() error {
	if c.Games < 1 {
		return errors.Errorf("experiment %q needs at least one game, got %d", c.Name, c.Games)
	}
	if c.Goroutines < 1 {
		return errors.Errorf("experiment %q needs at least one goroutine, got %d", c.Name, c.Goroutines)
	}
	if _, err := game.NewBoard(c.Width, c.Height); err != nil {
		return err
	}
	return nil
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
	err   error
}

// Run plays cfg.Games games spread over cfg.Goroutines workers. Game i pits
// Random agents seeded with Seed+2i (Dark) and Seed+2i+1 (Light), so a batch
// is reproducible regardless of scheduling. Every game owns its board.
func Run(cfg Config) (metrics.Summary, error) {
	if err := cfg.validate(); err != nil {
		return metrics.Summary{}, err
	}

	log.Info().Msgf("starting %s experiment with %d games on %d goroutines...", cfg.Name, cfg.Games, cfg.Goroutines)

	collector := newCollector(cfg)
	collector.Start()

	task := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		task <- i
	}
	close(task)

	results := make([]result, cfg.Games)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				results[i] = runGame(cfg, i)
				if results[i].err == nil {
					collector.Add(results[i].game.GameMetric)
				}
			}
		}()
	}
	wg.Wait()

	summary := collector.Complete()

	var errs *multierror.Error
	gameRecords := make([]metrics.GameRecord, 0, cfg.Games)
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		if r.err != nil {
			errs = multierror.Append(errs, r.err)
			continue
		}
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
	}

	if cfg.NoMetrics {
		log.Info().Msgf("completed %s experiment", cfg.Name)
	} else {
		log.Info().Msgf("completed %s experiment: %d games, dark %d, light %d, draws %d in %s",
			cfg.Name, summary.Games, summary.DarkWins, summary.LightWins, summary.Draws, summary.Duration)
	}

	if cfg.OutDir != "" {
		if err := store(cfg, gameRecords, moveRecords); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return summary, errs.ErrorOrNil()
}

func newCollector(cfg Config) metrics.Collector {
	if cfg.NoMetrics {
		return metrics.NewDummyCollector()
	}
	return metrics.NewCollector()
}

// runGame executes game i of the batch.
func runGame(cfg Config, i int) result {
	dark := player.NewRandom(cfg.Seed + 2*uint64(i))
	light := player.NewRandom(cfg.Seed + 2*uint64(i) + 1)

	e, err := engine.LocalEngine([2]player.Agent{dark, light}, cfg.Width, cfg.Height)
	if err != nil {
		return result{err: errors.Wrapf(err, "game %d", i)}
	}

	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return result{err: errors.Wrapf(err, "game %d", i)}
	}
	log.Debug().Str("game", gameMetric.ID).Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, winner)

	r := result{
		game: metrics.GameRecord{
			Agent1:     agentName(cfg.Seed + 2*uint64(i)),
			Agent2:     agentName(cfg.Seed + 2*uint64(i) + 1),
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{
			Game:       gameMetric.ID,
			MoveMetric: mm,
		})
	}
	return r
}

func agentName(seed uint64) string {
	return "random-" + strconv.FormatUint(seed, 10)
}

// store writes both record files. A failure of one does not stop the other.
func store(cfg Config, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	var errs *multierror.Error
	if err := writer.WriteGameRecords(games); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "failed to write game records"))
	} else {
		log.Info().Msgf("stored game records in %s", writer.Dir())
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "failed to write move records"))
	} else {
		log.Info().Msgf("stored move records in %s", writer.Dir())
	}
	return errs.ErrorOrNil()
}
