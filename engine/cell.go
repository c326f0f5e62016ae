package engine

// CellState tracks whether a single ship cell has been hit.
type CellState uint8

const (
	CellIntact CellState = iota
	CellStruck
)

// String returns the state name.
func (s CellState) String() string {
	if s == CellStruck {
		return "struck"
	}
	return "intact"
}

// Cell is one grid unit of a ship's length. Cells are created with their
// ship, are owned by exactly one ship and never outlive it.
type Cell struct {
	ship  *Ship
	state CellState
}

// Intact reports whether the cell has not been hit yet.
func (c *Cell) Intact() bool { return c.state == CellIntact }

// State returns the cell state.
func (c *Cell) State() CellState { return c.state }

// Ship returns the owning ship.
func (c *Cell) Ship() *Ship { return c.ship }

// Strike marks the cell as struck and records the damage on the owning
// ship, permanently disabling its movement. Striking the same cell twice
// is the caller's contract violation; Board.Hit guards it with
// ErrRepeatShot.
func (c *Cell) Strike() {
	c.state = CellStruck
	c.ship.RecordDamage()
}
