package game

import "fmt"

// Coordinate addresses a cell by column X and row Y, starting at (0,0).
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	return Coordinate{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit vector with both components in {-1,0,1}, never (0,0).
type Direction struct {
	DX int
	DY int
}

var directions = [8]Direction{
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}
