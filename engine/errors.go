package engine

// RuleError is the base kind for all recoverable game rule violations.
// Front-ends match the specific values below with errors.Is and treat any
// RuleError as local control flow, never as a fatal condition.
type RuleError string

func (e RuleError) Error() string { return string(e) }

const (
	// ErrShipMove reports a move by a damaged ship, or a move that left
	// the fleet in an invalid state and was rolled back.
	ErrShipMove = RuleError("ship cannot move")

	// ErrOutOfBoard reports a shot aimed outside the board bounds.
	ErrOutOfBoard = RuleError("coordinates are outside the board")

	// ErrRepeatShot reports a shot at a field that was already hit.
	ErrRepeatShot = RuleError("this field was already hit")

	// ErrNoRoom reports a placement that found no valid position.
	ErrNoRoom = RuleError("no room to place the ship")
)
