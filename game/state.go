package game

import (
	"encoding/binary"
	"hash/fnv"
	"slices"

	"github.com/pkg/errors"
)

// GameState pairs a board with the turn state machine: whose move it is, the
// legal moves for that side, and the terminal status once neither side can
// move. The legal-move set is recomputed after every change, never patched.
type GameState struct {
	board     *Board
	turn      Side
	status    Status
	moves     []Coordinate // legal moves for turn
	moveCount int
	lastMove  Coordinate
	hasLast   bool
	passed    bool // the side that just moved moves again
}

// NewGameState starts a game on a fresh width x height board with Dark to move.
func NewGameState(width, height int) (*GameState, error) {
	b, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	gs := &GameState{board: b}
	gs.settle(DarkSide)
	return gs, nil
}

// FromBoard starts a game from an arbitrary position. The board is copied.
// If toMove has no legal move the turn passes, and if neither side can move
// the state is terminal.
func FromBoard(b *Board, toMove Side) (*GameState, error) {
	if !toMove.Valid() {
		return nil, errors.Errorf("invalid side %v", toMove)
	}
	gs := &GameState{board: b.Clone()}
	gs.settle(toMove)
	return gs, nil
}

// settle hands the turn to next if it can move, else back to the other side,
// else ends the game. The game is over only when both sides are blocked.
func (gs *GameState) settle(next Side) {
	gs.passed = false
	if moves := gs.board.LegalMoves(next); len(moves) > 0 {
		gs.turn, gs.moves, gs.status = next, moves, toMoveStatus(next)
		return
	}
	if moves := gs.board.LegalMoves(next.Other()); len(moves) > 0 {
		gs.turn, gs.moves, gs.status = next.Other(), moves, toMoveStatus(next.Other())
		gs.passed = true
		return
	}
	gs.turn = next
	gs.moves = nil
	gs.status = terminalStatus(gs.board.Winner(false))
}

func (gs *GameState) Copy() *GameState {
	cp := *gs
	cp.board = gs.board.Clone()
	cp.moves = slices.Clone(gs.moves)
	return &cp
}

// Reset clears the board back to the seeded opening with Dark to move.
func (gs *GameState) Reset() {
	gs.board.Reset()
	gs.moveCount = 0
	gs.lastMove, gs.hasLast = Coordinate{}, false
	gs.settle(DarkSide)
}

// Apply plays c for the side to move and returns the successor state.
// The receiver is left untouched whether or not the move is accepted.
func (gs *GameState) Apply(c Coordinate) (*GameState, error) {
	if gs.status.Terminal() {
		return nil, ErrGameOver
	}
	if !gs.board.InBounds(c) {
		return nil, gs.board.outOfBounds(c)
	}
	if !gs.IsLegal(c) {
		return nil, errors.Wrapf(ErrIllegalMove, "%v cannot play %v", gs.turn, c)
	}
	next := gs.Copy()
	if _, err := next.board.ApplyMove(c, gs.turn); err != nil {
		return nil, err
	}
	next.moveCount++
	next.lastMove, next.hasLast = c, true
	next.settle(gs.turn.Other())
	return next, nil
}

// Play implements State.
func (gs *GameState) Play(c Coordinate) (State, error) {
	next, err := gs.Apply(c)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// IsLegal reports whether c is in the current legal-move set.
func (gs *GameState) IsLegal(c Coordinate) bool {
	return slices.Contains(gs.moves, c)
}

// LegalMoves returns a copy of the legal moves for the side to move.
func (gs *GameState) LegalMoves() []Coordinate {
	return slices.Clone(gs.moves)
}

func (gs *GameState) Turn() Side     { return gs.turn }
func (gs *GameState) Status() Status { return gs.status }
func (gs *GameState) MoveCount() int { return gs.moveCount }

// Passed reports whether the last move left the opponent without a legal
// move, so the same side moves again.
func (gs *GameState) Passed() bool { return gs.passed }

func (gs *GameState) LastMove() (Coordinate, bool) {
	return gs.lastMove, gs.hasLast
}

// Player returns the name of the side to move, "" once the game is over.
func (gs *GameState) Player() string {
	if gs.status.Terminal() {
		return ""
	}
	return gs.turn.String()
}

// Winner returns the final outcome, OutcomeNone while the game is running.
func (gs *GameState) Winner() Outcome {
	return gs.status.Outcome()
}

func (gs *GameState) Cell(c Coordinate) (Cell, error) {
	return gs.board.Cell(c)
}

func (gs *GameState) Counts() Counts {
	return gs.board.Counts()
}

// Board returns a copy of the current board.
func (gs *GameState) Board() *Board {
	return gs.board.Clone()
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, uint8(gs.turn))
	binary.Write(hasher, binary.LittleEndian, uint8(gs.status))
	binary.Write(hasher, binary.LittleEndian, int64(gs.board.width))
	binary.Write(hasher, binary.LittleEndian, int64(gs.board.height))

	cells := make([]byte, len(gs.board.cells))
	for i, cell := range gs.board.cells {
		cells[i] = byte(cell)
	}
	hasher.Write(cells)

	return StateHash(hasher.Sum64())
}
