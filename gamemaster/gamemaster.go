package gamemaster

import (
	"othello/game"
	"othello/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Communicator is the presentation side of a game: it shows positions and
// collects moves from a human player.
type Communicator interface {
	UpdateGameState(state *game.GameState)
	ReceiveMove(state *game.GameState) (game.Coordinate, error)
	RejectMove(move game.Coordinate, err error)
}

// GameMaster runs a game between humans behind a Communicator and, for the
// sides listed in Computer, in-process agents.
type GameMaster struct {
	Communicator Communicator
	Engine       Engine
	Computer     map[game.Side]player.Agent
}

// NewGameMaster initializes a new GameMaster. With no computer sides both
// players are human.
func NewGameMaster(comm Communicator, engine Engine) *GameMaster {
	return &GameMaster{
		Communicator: comm,
		Engine:       engine,
		Computer:     map[game.Side]player.Agent{},
	}
}

// WithComputer hands side to agent.
func (gm *GameMaster) WithComputer(side game.Side, agent player.Agent) *GameMaster {
	gm.Computer[side] = agent
	return gm
}

// RunGame plays from the engine's current state until the game is over.
// Illegal moves are reported back to the Communicator and asked again; an
// error from the Communicator itself ends the game loop.
func (gm *GameMaster) RunGame() (game.Outcome, error) {
	state := gm.Engine.State()
	gm.Communicator.UpdateGameState(state)

	for !state.Status().Terminal() {
		side := state.Turn()

		var move game.Coordinate
		var err error
		agent, computer := gm.Computer[side]
		if computer {
			move, err = agent.FindMove(state)
			if err != nil {
				return game.OutcomeNone, errors.Wrapf(err, "computer player %s", side)
			}
		} else {
			move, err = gm.Communicator.ReceiveMove(state)
			if err != nil {
				return game.OutcomeNone, errors.Wrapf(err, "receiving move for %s", side)
			}
		}

		err = gm.Engine.Play(move)
		switch {
		case computer && err != nil:
			return game.OutcomeNone, errors.Wrapf(err, "computer player %s", side)
		case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrOutOfBounds):
			log.Debug().Err(err).Msgf("rejected %v for %s", move, side)
			gm.Communicator.RejectMove(move, err)
			continue
		case err != nil:
			return game.OutcomeNone, err
		}

		state = gm.Engine.State()
		if state.Passed() {
			log.Info().Msgf("%s has no legal move, %s plays again", side.Other(), side)
		}
		gm.Communicator.UpdateGameState(state)
	}

	log.Info().Msgf("game over: %s", state.Status())
	return state.Winner(), nil
}
