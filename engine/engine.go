package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays a game until neither side can move
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
