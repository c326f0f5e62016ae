package player

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/MaslovStas/BattleSea/engine"
)

// AI is the computer opponent. It aims uniformly at random and re-rolls
// any pick the board refuses as a repeat shot.
type AI struct {
	base
	rng *rand.Rand
	out io.Writer
}

// NewAI creates the computer player shooting with rng and announcing its
// shots on out.
func NewAI(board *engine.Board, rng *rand.Rand, out io.Writer) *AI {
	if rng == nil {
		rng = engine.NewRand(0)
	}
	return &AI{base: base{name: "AI", board: board}, rng: rng, out: out}
}

// Fire picks a random target on board and resolves the shot, re-rolling
// while the pick lands on an already-struck cell. Sampling stays inside
// the grid, so the repeat shot is the board's only possible refusal.
func (a *AI) Fire(board *engine.Board) (engine.ShotResult, int, int) {
	for {
		row, col := a.rng.Intn(board.Size()), a.rng.Intn(board.Size())
		res, err := board.Hit(row, col)
		if err != nil {
			continue
		}
		return res, row, col
	}
}

// Shoot fires at the opponent's board and announces the target and the
// outcome on one line.
func (a *AI) Shoot(opponent Player) (bool, error) {
	res, row, col := a.Fire(opponent.Board())
	fmt.Fprintf(a.out, "%s fires at %s. ", a.name, FormatTarget(row, col))
	announce(a.out, res)
	return res != engine.ShotMiss, nil
}
