package gamemaster

import (
	"othello/game"
)

// Update is a move accepted by the engine and the state it produced.
type Update struct {
	Move  game.Coordinate
	State *game.GameState
}

// UpdateGetter returns the latest unread update. It never blocks: ok is false
// when nothing new was played and after the final update has been read.
type UpdateGetter func() (u Update, ok bool)

// Engine is the contract a presentation layer drives. It is not safe for
// concurrent use: calls to Play and Reset must be serialized.
type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Coordinate) error
	State() *game.GameState
	Reset() *game.GameState
}

type localEngine struct {
	width    int
	height   int
	state    *game.GameState
	updateCh chan Update
	gameOver bool
}

// NewLocalEngine validates the board dimensions up front so Init cannot fail.
// The returned engine is already initialized.
func NewLocalEngine(width, height int) (*localEngine, error) {
	if _, err := game.NewGameState(width, height); err != nil {
		return nil, err
	}
	e := &localEngine{width: width, height: height}
	e.Init()
	return e, nil
}

func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	state, _ := game.NewGameState(e.width, e.height)
	e.state = state
	e.gameOver = false
	e.updateCh = make(chan Update, 1)

	return e.state, func() (Update, bool) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			return Update{}, false
		}
	}
}

// Play validates move against the legal moves of the side to move and applies
// it. Errors wrap game.ErrGameOver, game.ErrOutOfBounds or game.ErrIllegalMove;
// a rejected move leaves the state untouched so the caller can ask again.
func (e *localEngine) Play(move game.Coordinate) error {
	if e.gameOver {
		return game.ErrGameOver
	}

	newState, err := e.state.Apply(move)
	if err != nil {
		return err
	}
	e.state = newState

	e.publish(Update{Move: move, State: newState})
	if newState.Status().Terminal() {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}

// publish keeps only the latest update in the channel.
func (e *localEngine) publish(u Update) {
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- u
}

func (e *localEngine) State() *game.GameState {
	return e.state
}

// Reset starts a new game on the same board size. Updates of the previous
// game that were not read yet are discarded.
func (e *localEngine) Reset() *game.GameState {
	state := e.state.Copy()
	state.Reset()
	e.state = state
	e.gameOver = false
	e.updateCh = make(chan Update, 1)
	return e.state
}
