package game

type StateHash uint64

// State is the view of a game that agents and drivers work against.
// Play never mutates the receiver; it returns the successor state.
type State interface {
	Player() string
	Turn() Side
	Status() Status
	LegalMoves() []Coordinate
	Play(Coordinate) (State, error)
	Hash() StateHash
	Winner() Outcome
}
