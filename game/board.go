package game

import (
	"strings"

	"github.com/pkg/errors"
)

// MinDimension is the smallest width or height that can hold the seeded center.
const MinDimension = 4

// Counts tallies the cells of a board by state.
type Counts struct {
	Empty int
	Dark  int
	Light int
}

// Discs returns the number of occupied cells.
func (c Counts) Discs() int {
	return c.Dark + c.Light
}

// Board is the rules engine. It exclusively owns the grid; cells change only
// through ApplyMove and Reset. A Board is not safe for concurrent use.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewBoard returns a width x height board with the four center cells seeded.
// Both dimensions must be even and at least MinDimension.
func NewBoard(width, height int) (*Board, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.seed()
	return b, nil
}

// FromRows builds a board from text rows, one string per row: '.' is empty,
// 'X' is dark and 'O' is light. The dimension rules of NewBoard apply.
func FromRows(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "no rows")
	}
	width, height := len(rows[0]), len(rows)
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "row %d has %d cells, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			cell, ok := parseCell(row[x])
			if !ok {
				return nil, errors.Wrapf(ErrInvalidConfiguration, "unknown cell %q at (%d,%d)", row[x], x, y)
			}
			b.cells[y*width+x] = cell
		}
	}
	return b, nil
}

func validateDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return errors.Wrapf(ErrInvalidConfiguration, "board %dx%d is smaller than %dx%d",
			width, height, MinDimension, MinDimension)
	}
	if width%2 != 0 || height%2 != 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "board %dx%d has an odd dimension", width, height)
	}
	return nil
}

// seed places two diagonally-opposed pairs on the four center-most cells.
func (b *Board) seed() {
	cx, cy := b.width/2, b.height/2
	b.set(Coordinate{cx - 1, cy - 1}, Dark)
	b.set(Coordinate{cx, cy}, Dark)
	b.set(Coordinate{cx - 1, cy}, Light)
	b.set(Coordinate{cx, cy - 1}, Light)
}

// Reset clears every cell and re-seeds the center.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.seed()
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.width && c.Y < b.height
}

// Cell returns the state of the cell at c.
func (b *Board) Cell(c Coordinate) (Cell, error) {
	if !b.InBounds(c) {
		return Empty, b.outOfBounds(c)
	}
	return b.at(c), nil
}

func (b *Board) at(c Coordinate) Cell {
	return b.cells[c.Y*b.width+c.X]
}

func (b *Board) set(c Coordinate, cell Cell) {
	b.cells[c.Y*b.width+c.X] = cell
}

func (b *Board) outOfBounds(c Coordinate) error {
	return errors.Wrapf(ErrOutOfBounds, "cell %v on %dx%d board", c, b.width, b.height)
}

// LegalMoves returns every empty cell where side would capture at least one
// disc, in row-major order. An invalid side has no moves.
func (b *Board) LegalMoves(side Side) []Coordinate {
	if !side.Valid() {
		return nil
	}
	var moves []Coordinate
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := Coordinate{X: x, Y: y}
			if b.at(c) == Empty && b.captures(c, side, true) != nil {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// Captures returns the opposing discs that side would flip by playing at c.
// The result is empty when c is occupied or captures nothing.
func (b *Board) Captures(c Coordinate, side Side) ([]Coordinate, error) {
	if !b.InBounds(c) {
		return nil, b.outOfBounds(c)
	}
	if !side.Valid() || b.at(c) != Empty {
		return nil, nil
	}
	return b.captures(c, side, false), nil
}

// IsLegal reports whether c is in LegalMoves(side).
func (b *Board) IsLegal(c Coordinate, side Side) (bool, error) {
	flips, err := b.Captures(c, side)
	if err != nil {
		return false, err
	}
	return len(flips) > 0, nil
}

// captures unions the capture runs of all directions. With first set it
// stops at the first non-empty run, which is all a legality check needs.
func (b *Board) captures(origin Coordinate, side Side, first bool) []Coordinate {
	var flips []Coordinate
	for _, d := range directions {
		run := b.captureRun(origin, side, d)
		if len(run) == 0 {
			continue
		}
		flips = append(flips, run...)
		if first {
			break
		}
	}
	return flips
}

// captureRun scans outward from origin in direction d and returns the run of
// opposing discs bounded by a disc of side, or nil when there is none.
func (b *Board) captureRun(origin Coordinate, side Side, d Direction) []Coordinate {
	own, opp := side.Cell(), side.Other().Cell()
	var run []Coordinate
	pos := origin.Step(d)
	for b.InBounds(pos) && b.at(pos) == opp {
		run = append(run, pos)
		pos = pos.Step(d)
	}
	if len(run) == 0 || !b.InBounds(pos) || b.at(pos) != own {
		return nil
	}
	return run
}

// ApplyMove places a disc of side at c and flips every captured disc. It
// returns the flipped cells. A rejected move leaves the board unchanged.
func (b *Board) ApplyMove(c Coordinate, side Side) ([]Coordinate, error) {
	if !b.InBounds(c) {
		return nil, b.outOfBounds(c)
	}
	if !side.Valid() {
		return nil, errors.Wrapf(ErrIllegalMove, "invalid side %v", side)
	}
	if cell := b.at(c); cell != Empty {
		return nil, errors.Wrapf(ErrIllegalMove, "cell %v is occupied by %v", c, cell)
	}
	flips := b.captures(c, side, false)
	if len(flips) == 0 {
		return nil, errors.Wrapf(ErrIllegalMove, "%v captures nothing at %v", side, c)
	}
	b.set(c, side.Cell())
	for _, f := range flips {
		b.set(f, side.Cell())
	}
	return flips, nil
}

// Counts tallies the cells by state.
func (b *Board) Counts() Counts {
	var n Counts
	for _, cell := range b.cells {
		switch cell {
		case Empty:
			n.Empty++
		case Dark:
			n.Dark++
		case Light:
			n.Light++
		}
	}
	return n
}

// Winner answers who wins if the game ended now. It returns OutcomeNone only
// when sideToMoveHasOtherOptions is set and empty cells remain; callers must
// confirm that neither side can move before treating any other result as final.
func (b *Board) Winner(sideToMoveHasOtherOptions bool) Outcome {
	n := b.Counts()
	if sideToMoveHasOtherOptions && n.Empty > 0 {
		return OutcomeNone
	}
	switch {
	case n.Dark == n.Light:
		return OutcomeDraw
	case n.Dark > n.Light:
		return OutcomeDark
	default:
		return OutcomeLight
	}
}

// Snapshot returns a copy of the cells in row-major order.
func (b *Board) Snapshot() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Snapshot(),
	}
}

// String renders the board in the FromRows format.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteByte(b.at(Coordinate{X: x, Y: y}).symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
