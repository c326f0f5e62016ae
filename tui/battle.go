package tui

import (
	"fmt"

	"github.com/MaslovStas/BattleSea/engine"
	"github.com/MaslovStas/BattleSea/player"
)

// fire resolves the player's shot at the cursor. A hit keeps the turn;
// a miss hands the enemy its volley and, once the turn comes back, both
// fleets reposition and a new round begins.
func (a *App) fire() {
	res, err := a.aiBoard.Hit(a.cursorRow, a.cursorCol)
	if err != nil {
		a.message = "That field was already hit!"
		return
	}
	a.humanShots++

	target := player.FormatTarget(a.cursorRow, a.cursorCol)
	switch res {
	case engine.ShotWounded:
		a.message = fmt.Sprintf("You fire at %s. Wounded!", target)
		a.sound.PlayExplosion()

	case engine.ShotSunk:
		a.message = fmt.Sprintf("You fire at %s. Sunk!", target)
		a.sound.PlaySink()
		if !a.aiBoard.Alive() {
			a.finish(a.name)
		}

	default:
		a.humanMisses[a.cursorRow][a.cursorCol] = true
		a.message = fmt.Sprintf("You fire at %s. Miss!", target)
		a.sound.PlaySplash()

		a.enemyVolley()
		if !a.gameOver {
			a.moveFleets()
			a.round++
		}
	}
}

// enemyVolley lets the computer fire until it misses or wins.
func (a *App) enemyVolley() {
	for {
		res, row, col := a.ai.Fire(a.humanBoard)
		a.aiShots++

		target := player.FormatTarget(row, col)
		switch res {
		case engine.ShotWounded:
			a.message = fmt.Sprintf("AI fires at %s. Wounded!", target)
			a.sound.PlayExplosion()

		case engine.ShotSunk:
			a.message = fmt.Sprintf("AI fires at %s. Sunk!", target)
			a.sound.PlaySink()
			if !a.humanBoard.Alive() {
				a.finish(a.ai.Name())
				return
			}

		default:
			a.aiMisses[row][col] = true
			a.message = fmt.Sprintf("AI fires at %s. Miss!", target)
			a.sound.PlaySplash()
			return
		}
	}
}

func (a *App) moveFleets() {
	for _, b := range []*engine.Board{a.aiBoard, a.humanBoard} {
		b.MoveAllShips()
	}
}

func (a *App) finish(winner string) {
	a.gameOver = true
	a.winner = winner
	a.sound.PlayJingle()
}
