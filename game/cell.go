package game

import "fmt"

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// symbol is the rune used by FromRows and Board.String.
func (c Cell) symbol() byte {
	switch c {
	case Dark:
		return 'X'
	case Light:
		return 'O'
	default:
		return '.'
	}
}

func parseCell(r byte) (Cell, bool) {
	switch r {
	case '.':
		return Empty, true
	case 'X', 'x':
		return Dark, true
	case 'O', 'o':
		return Light, true
	}
	return Empty, false
}

// Side is one of the two competing colours. Dark always moves first.
type Side uint8

const (
	DarkSide  = Side(Dark)
	LightSide = Side(Light)
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == DarkSide {
		return LightSide
	}
	return DarkSide
}

// Cell returns the cell state owned by s.
func (s Side) Cell() Cell {
	return Cell(s)
}

func (s Side) Valid() bool {
	return s == DarkSide || s == LightSide
}

func (s Side) String() string {
	switch s {
	case DarkSide:
		return "Dark"
	case LightSide:
		return "Light"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Outcome answers "who wins if the game ended now".
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDark
	OutcomeLight
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeDark:
		return "Dark"
	case OutcomeLight:
		return "Light"
	case OutcomeDraw:
		return "Draw"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Status is the position of a game in the turn state machine.
type Status uint8

const (
	DarkToMove Status = iota
	LightToMove
	DarkWins
	LightWins
	Draw
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == DarkWins || s == LightWins || s == Draw
}

// Outcome maps a terminal status to its outcome, OutcomeNone otherwise.
func (s Status) Outcome() Outcome {
	switch s {
	case DarkWins:
		return OutcomeDark
	case LightWins:
		return OutcomeLight
	case Draw:
		return OutcomeDraw
	default:
		return OutcomeNone
	}
}

func (s Status) String() string {
	switch s {
	case DarkToMove:
		return "DarkToMove"
	case LightToMove:
		return "LightToMove"
	case DarkWins:
		return "DarkWins"
	case LightWins:
		return "LightWins"
	case Draw:
		return "Draw"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func toMoveStatus(s Side) Status {
	if s == DarkSide {
		return DarkToMove
	}
	return LightToMove
}

func terminalStatus(o Outcome) Status {
	switch o {
	case OutcomeDark:
		return DarkWins
	case OutcomeLight:
		return LightWins
	default:
		return Draw
	}
}
