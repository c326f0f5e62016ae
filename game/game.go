// Package game runs a match between the console player and the computer
// opponent: turn alternation, the between-round fleet movement and the
// win condition.
package game

import (
	"fmt"
	"io"

	"github.com/MaslovStas/BattleSea/engine"
	"github.com/MaslovStas/BattleSea/player"
	"github.com/MaslovStas/BattleSea/render"
)

// Controller drives a match. The human opens; a hit keeps the turn and
// a miss passes it, and every time the turn comes back around to the
// human both fleets reposition. The match ends when a fleet has no live
// ship left.
type Controller struct {
	human player.Player
	ai    player.Player
	turn  player.Player
	out   io.Writer

	humanShots int
	aiShots    int
}

// Result summarizes a finished match.
type Result struct {
	Winner     player.Player
	HumanShots int
	AIShots    int
}

// New creates a controller writing boards and announcements to out.
func New(human, ai player.Player, out io.Writer) *Controller {
	return &Controller{human: human, ai: ai, out: out}
}

// Run plays the match to the end and reports the result. The opponent's
// board is shown before every shot, exactly as the shooter may target
// it. The only error is a failed input source, which abandons the
// match.
func (c *Controller) Run() (*Result, error) {
	c.turn = c.human

	for c.human.Alive() && c.ai.Alive() {
		opponent := c.opponentOf(c.turn)
		if err := render.WriteBoard(c.out, opponent.Board(), render.Options{}); err != nil {
			return nil, fmt.Errorf("showing the board: %w", err)
		}

		hit, err := c.turn.Shoot(opponent)
		if err != nil {
			return nil, fmt.Errorf("%s's shot: %w", c.turn.Name(), err)
		}
		c.countShot()

		if !hit {
			c.changeTurn()
		}
	}

	res := &Result{Winner: c.winner(), HumanShots: c.humanShots, AIShots: c.aiShots}
	fmt.Fprintf(c.out, "%s wins!\n", res.Winner.Name())
	fmt.Fprintf(c.out, "Shots fired: %s %d, %s %d.\n",
		c.human.Name(), res.HumanShots, c.ai.Name(), res.AIShots)
	return res, nil
}

func (c *Controller) opponentOf(p player.Player) player.Player {
	if p == c.human {
		return c.ai
	}
	return c.human
}

func (c *Controller) countShot() {
	if c.turn == c.human {
		c.humanShots++
		return
	}
	c.aiShots++
}

// changeTurn passes the turn to the other player. Handing it back to
// the human closes a round, so both fleets move.
func (c *Controller) changeTurn() {
	if c.turn == c.human {
		c.turn = c.ai
		return
	}
	c.turn = c.human
	c.moveFleets()
}

func (c *Controller) moveFleets() {
	for _, b := range []*engine.Board{c.ai.Board(), c.human.Board()} {
		b.MoveAllShips()
	}
}

func (c *Controller) winner() player.Player {
	if c.ai.Alive() {
		return c.ai
	}
	return c.human
}
