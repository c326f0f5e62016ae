// Package player implements the two combatants: a console-driven human
// and a uniformly random computer opponent. Players own their board and
// fire at the opponent's; all reading and printing lives here so the
// engine stays free of I/O.
package player

import (
	"fmt"
	"io"

	"github.com/MaslovStas/BattleSea/engine"
)

// Player is one side of the game.
type Player interface {
	// Name identifies the player in announcements.
	Name() string

	// Board returns the player's own board.
	Board() *engine.Board

	// Alive reports whether the player still has a live ship.
	Alive() bool

	// Shoot fires one resolved shot at the opponent and reports whether
	// it hit, which keeps the turn. The error is reserved for input
	// failure; rule refusals are handled inside with retries.
	Shoot(opponent Player) (bool, error)
}

type base struct {
	name  string
	board *engine.Board
}

func (b *base) Name() string         { return b.name }
func (b *base) Board() *engine.Board { return b.board }
func (b *base) Alive() bool          { return b.board.Alive() }

// announce prints the outcome exclamation for a resolved shot.
func announce(w io.Writer, res engine.ShotResult) {
	switch res {
	case engine.ShotSunk:
		fmt.Fprintln(w, "Sunk!")
	case engine.ShotWounded:
		fmt.Fprintln(w, "Wounded!")
	default:
		fmt.Fprintln(w, "Miss!")
	}
}
