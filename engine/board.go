package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 10

// placeAttempts caps the random placement retry loop so an overfull board
// fails with ErrNoRoom instead of spinning forever.
const placeAttempts = 10000

// fleetComposition is the classic fleet: one battleship, two cruisers,
// three destroyers and four boats.
var fleetComposition = []struct {
	length, count int
}{
	{4, 1},
	{3, 2},
	{2, 3},
	{1, 4},
}

// Board owns a fleet of ships and resolves shots against it. Ships are
// identified by their index in the fleet; the board never compares ships
// by pointer.
type Board struct {
	size  int
	ships []*Ship
	rng   *rand.Rand
}

// NewRand returns the random source used for fleet placement, movement
// and AI aiming. Seed 0 derives the seed from the current time; any other
// value gives a reproducible sequence.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewEmptyBoard creates a board without a fleet. Sizes below 1 fall back
// to DefaultSize and a nil rng is replaced with a time-seeded one.
func NewEmptyBoard(size int, rng *rand.Rand) *Board {
	if size < 1 {
		size = DefaultSize
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Board{size: size, rng: rng}
}

// NewBoard creates a board and places the full classic fleet on it: each
// ship gets an independently random orientation and a random valid
// position, longest ships first. The only failure is ErrNoRoom, when the
// grid cannot take the fleet.
func NewBoard(size int, rng *rand.Rand) (*Board, error) {
	b := NewEmptyBoard(size, rng)
	for _, class := range fleetComposition {
		for i := 0; i < class.count; i++ {
			orientation := Horizontal
			if b.rng.Intn(2) == 1 {
				orientation = Vertical
			}
			if err := b.PlaceShip(NewShip(class.length, orientation)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Size returns the grid dimension.
func (b *Board) Size() int { return b.size }

// Ships returns the fleet in placement order. The slice is the board's
// own; callers must not modify it.
func (b *Board) Ships() []*Ship { return b.ships }

// Alive reports whether at least one ship still has an intact cell.
func (b *Board) Alive() bool {
	for _, s := range b.ships {
		if s.Alive() {
			return true
		}
	}
	return false
}

// PlaceShip tries random start coordinates until the ship sits fully on
// the board without touching the rest of the fleet, then appends it to
// the fleet. The retry loop is capped; exhausting it reports ErrNoRoom.
func (b *Board) PlaceShip(s *Ship) error {
	for i := 0; i < placeAttempts; i++ {
		s.SetStartCoords(b.rng.Intn(b.size), b.rng.Intn(b.size))
		if !b.locationInvalid(s, -1) {
			b.ships = append(b.ships, s)
			return nil
		}
	}
	return fmt.Errorf("%w: length %d after %d attempts", ErrNoRoom, s.Len(), placeAttempts)
}

// PlaceShipAt places the ship at an explicit position with the same
// validation as PlaceShip. Used to build fixed scenarios.
func (b *Board) PlaceShipAt(s *Ship, x, y int) error {
	s.SetStartCoords(x, y)
	if b.locationInvalid(s, -1) {
		return fmt.Errorf("%w: length %d at %d,%d", ErrNoRoom, s.Len(), x, y)
	}
	b.ships = append(b.ships, s)
	return nil
}

// locationInvalid reports whether s is out of bounds or overlaps a fleet
// ship other than the one at index self. self < 0 means s is not in the
// fleet yet and is checked against every ship.
func (b *Board) locationInvalid(s *Ship, self int) bool {
	if s.OutOfBounds(b.size) {
		return true
	}
	for i, other := range b.ships {
		if i == self {
			continue
		}
		if s.Overlaps(other) {
			return true
		}
	}
	return false
}

// Grid returns the size x size cell view of the board, derived from ship
// geometry on every call. Nil entries are open water.
func (b *Board) Grid() [][]*Cell {
	grid := make([][]*Cell, b.size)
	for row := range grid {
		grid[row] = make([]*Cell, b.size)
	}
	for _, s := range b.ships {
		if !s.Placed() {
			continue
		}
		x1, y1 := s.StartCoords()
		x2, y2 := s.FinishCoords()
		i := 0
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				grid[y][x] = s.Cell(i)
				i++
			}
		}
	}
	return grid
}

// At returns the cell at (row, col), or nil for open water.
func (b *Board) At(row, col int) *Cell {
	return b.Grid()[row][col]
}

// ShotResult is the outcome of a resolved shot.
type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotWounded
	ShotSunk
)

// String returns the outcome name.
func (r ShotResult) String() string {
	switch r {
	case ShotWounded:
		return "wounded"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Hit resolves a shot at (row, col). Coordinates outside the board fail
// with ErrOutOfBoard and change nothing. Open water returns ShotMiss.
// An intact cell is struck, wounding the ship or sinking it when no
// intact cell remains; a struck cell fails with ErrRepeatShot. The
// returned values are the only outcome channel; the board keeps no shot
// history.
func (b *Board) Hit(row, col int) (ShotResult, error) {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return ShotMiss, ErrOutOfBoard
	}
	target := b.Grid()[row][col]
	if target == nil {
		return ShotMiss, nil
	}
	if !target.Intact() {
		return ShotMiss, ErrRepeatShot
	}
	target.Strike()
	if target.Ship().Alive() {
		return ShotWounded, nil
	}
	return ShotSunk, nil
}

// MoveAllShips repositions the fleet between rounds. Every ship picks a
// random direction along its axis and moves under a rollback guard; a
// blocked ship tries the opposite direction, and stays put when both
// attempts fail. Damaged ships never move.
func (b *Board) MoveAllShips() {
	for i, s := range b.ships {
		direction := 1
		if b.rng.Intn(2) == 1 {
			direction = -1
		}
		err := restoring(s, func() error { return b.moveShip(i, direction) })
		if err != nil {
			// Both directions blocked: the ship stays.
			restoring(s, func() error { return b.moveShip(i, -direction) })
		}
	}
}

// moveShip shifts the fleet ship at index i one step and validates the
// new position, reporting ErrShipMove when the fleet no longer fits
// together.
func (b *Board) moveShip(i, direction int) error {
	s := b.ships[i]
	if err := s.Move(direction); err != nil {
		return err
	}
	if b.locationInvalid(s, i) {
		return ErrShipMove
	}
	return nil
}

// restoring runs step and, when it fails, puts the ship's start
// coordinates back to what they were before the call. Only the position
// is restored: damage recorded during the step stays.
func restoring(s *Ship, step func() error) error {
	x, y := s.StartCoords()
	if err := step(); err != nil {
		s.SetStartCoords(x, y)
		return err
	}
	return nil
}
