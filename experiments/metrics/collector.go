package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step       int
	Side       game.Side
	Move       game.Coordinate
	Candidates int // legal moves offered to the agent
	Flipped    int
	Passed     bool // the opponent had to pass after this move
	Fallback   bool // the agent's choice was replaced by the first legal move
	Duration   time.Duration
}

type GameMetric struct {
	ID           string
	StartingSide game.Side
	Winner       game.Outcome
	Dark         int
	Light        int
	Empty        int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Summary tallies the outcomes of a batch of games.
type Summary struct {
	Games     int
	DarkWins  int
	LightWins int
	Draws     int
	Moves     int
	Duration  time.Duration
}

type Collector interface {
	Start()
	Add(g GameMetric)
	Complete() Summary
}

// collector can be shared by the goroutines of a batch.
type collector struct {
	startTime time.Time
	games     atomic.Int32
	darkWins  atomic.Int32
	lightWins atomic.Int32
	draws     atomic.Int32
	moves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) Add(g GameMetric) {
	m.games.Add(1)
	m.moves.Add(int64(g.TotalMoves))
	switch g.Winner {
	case game.OutcomeDark:
		m.darkWins.Add(1)
	case game.OutcomeLight:
		m.lightWins.Add(1)
	case game.OutcomeDraw:
		m.draws.Add(1)
	}
}

func (m *collector) Complete() Summary {
	return Summary{
		Games:     int(m.games.Load()),
		DarkWins:  int(m.darkWins.Load()),
		LightWins: int(m.lightWins.Load()),
		Draws:     int(m.draws.Load()),
		Moves:     int(m.moves.Load()),
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()            {}
func (m *dummyCollector) Add(g GameMetric)  {}
func (m *dummyCollector) Complete() Summary { return Summary{} }
