// meta/meta.go
package meta

// BOARD_WIDTH defines the default number of columns.
const BOARD_WIDTH = 8

// BOARD_HEIGHT defines the default number of rows.
const BOARD_HEIGHT = 8

// GO_ROUTINES defines the number of goroutines playing games in parallel.
const GO_ROUTINES = 8

// GAMES defines the number of self-play games per experiment.
const GAMES = 100

// SEED defines the base seed of the random agents.
const SEED = 1

// OUT_DIR defines where experiment records are written.
const OUT_DIR = "results"
