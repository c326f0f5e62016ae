package engine

// Orientation is the axis a ship extends along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Ship is an ordered run of cells with a geometric placement on the
// board. A ship starts movable and is anchored forever once any of its
// cells is struck; rolling back a failed move restores only the position,
// never the damage state.
type Ship struct {
	length      int
	orientation Orientation
	x, y        int
	placed      bool
	canMove     bool
	cells       []Cell
}

// NewShip creates an unplaced ship of the given length, one owned cell
// per unit of length.
func NewShip(length int, orientation Orientation) *Ship {
	s := &Ship{
		length:      length,
		orientation: orientation,
		canMove:     true,
	}
	s.cells = make([]Cell, length)
	for i := range s.cells {
		s.cells[i] = Cell{ship: s}
	}
	return s
}

// SetStartCoords places the ship's head at (x, y). No bounds or collision
// validation happens here; the board validates and rolls back.
func (s *Ship) SetStartCoords(x, y int) {
	s.x, s.y = x, y
	s.placed = true
}

// StartCoords returns the head coordinate.
func (s *Ship) StartCoords() (x, y int) { return s.x, s.y }

// FinishCoords returns start + (length, 1) for a horizontal ship and
// start + (1, length) for a vertical one.
func (s *Ship) FinishCoords() (x, y int) {
	if s.orientation == Horizontal {
		return s.x + s.length, s.y + 1
	}
	return s.x + 1, s.y + s.length
}

// Placed reports whether the ship has been given a start coordinate.
func (s *Ship) Placed() bool { return s.placed }

// Orientation returns the axis the ship extends along.
func (s *Ship) Orientation() Orientation { return s.orientation }

// RecordDamage permanently disables movement. Safe to call repeatedly.
func (s *Ship) RecordDamage() { s.canMove = false }

// CanMove reports whether the ship may still be moved.
func (s *Ship) CanMove() bool { return s.canMove }

// Move shifts the ship one step along its long axis; direction is +1 or
// -1. A damaged ship refuses with ErrShipMove. Move does not validate the
// resulting position; callers re-check and roll back.
func (s *Ship) Move(direction int) error {
	if !s.canMove {
		return ErrShipMove
	}
	if s.orientation == Horizontal {
		s.x += direction
	} else {
		s.y += direction
	}
	return nil
}

// Overlaps reports whether this ship's [start, finish] box intersects the
// other's, inclusive on both bounds. Finish lies one past the tail, so
// placements that merely touch the other ship's box also count as
// overlapping.
func (s *Ship) Overlaps(other *Ship) bool {
	x2, y2 := s.FinishCoords()
	ox1, oy1 := other.StartCoords()
	ox2, oy2 := other.FinishCoords()
	return s.x <= ox2 && x2 >= ox1 && s.y <= oy2 && y2 >= oy1
}

// OutOfBounds reports whether any of the four boundary coordinates falls
// outside [0, size).
func (s *Ship) OutOfBounds(size int) bool {
	x2, y2 := s.FinishCoords()
	for _, v := range [4]int{s.x, s.y, x2, y2} {
		if v < 0 || v >= size {
			return true
		}
	}
	return false
}

// Len returns the ship length in cells.
func (s *Ship) Len() int { return s.length }

// Cell returns the i-th cell, 0-based from the head.
func (s *Ship) Cell(i int) *Cell { return &s.cells[i] }

// Alive reports whether at least one cell is intact.
func (s *Ship) Alive() bool {
	for i := range s.cells {
		if s.cells[i].Intact() {
			return true
		}
	}
	return false
}
