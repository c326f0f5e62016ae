package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/MaslovStas/BattleSea/engine"
	"github.com/MaslovStas/BattleSea/render"
)

// Screen layout. Boards share a row: own fleet left, enemy waters
// right, one terminal cell of spacing between grid columns.
const (
	boardLeft = 2
	boardTop  = 2
	boardGap  = 8
	cellPitch = 2
)

// missMark shows a remembered shot into open water. The engine keeps no
// shot history, so these live only on the display side.
const missMark = '·'

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleShip   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStruck = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSunk   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleMiss   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

func (a *App) draw() {
	a.screen.Clear()

	a.drawText(boardLeft, 0, "BATTLESEA", styleTitle)
	status := fmt.Sprintf("Round %d   %s %d shots   AI %d shots",
		a.round, a.name, a.humanShots, a.aiShots)
	a.drawText(boardLeft+12, 0, status, styleStatus)

	a.drawBoard(boardLeft, boardTop, "YOUR FLEET", a.humanBoard,
		render.Options{}, a.aiMisses, false)

	enemyLeft := boardLeft + a.boardWidth() + boardGap
	a.drawBoard(enemyLeft, boardTop, "ENEMY WATERS", a.aiBoard,
		render.Options{FogOfWar: !a.reveal}, a.humanMisses, true)

	msgRow := boardTop + a.humanBoard.Size() + 3
	a.drawText(boardLeft, msgRow, a.message, styleText)
	a.drawText(boardLeft, msgRow+1, "hjkl/arrows aim, space/enter fires, q quits", styleStatus)

	if a.gameOver {
		a.drawOverlay()
	}

	a.screen.Show()
}

// boardWidth is the drawn width of one board: the letter column plus
// the cells at their pitch.
func (a *App) boardWidth() int {
	return 2 + a.humanBoard.Size()*cellPitch
}

// drawBoard renders one board with its label and coordinate headers.
// The cursor is drawn only on the enemy grid.
func (a *App) drawBoard(x0, y0 int, label string, b *engine.Board, opts render.Options, misses [][]bool, withCursor bool) {
	a.drawText(x0, y0, label, styleLabel)

	for col := 0; col < b.Size(); col++ {
		a.drawText(x0+2+col*cellPitch, y0+1, strconv.Itoa(col+1), styleHeader)
	}

	blink := time.Since(a.cursorBlinkTime).Milliseconds()%(2*cursorBlinkMs) < cursorBlinkMs

	for row, gridRow := range b.Grid() {
		y := y0 + 2 + row
		a.setCell(x0, y, rune('A'+row), styleHeader)

		for col, c := range gridRow {
			r := render.CellRune(c, opts.FogOfWar)
			style := cellStyle(r)
			if r == render.Background && misses[row][col] {
				r, style = missMark, styleMiss
			}
			if withCursor && !a.gameOver && row == a.cursorRow && col == a.cursorCol && blink {
				style = style.Reverse(true)
			}
			a.setCell(x0+2+col*cellPitch, y, r, style)
		}
	}
}

// cellStyle picks the color for an already-resolved glyph, so fogged
// ship cells color as water.
func cellStyle(r rune) tcell.Style {
	switch r {
	case render.Background:
		return styleWater
	case render.Intact:
		return styleShip
	case render.Sunk:
		return styleSunk
	case render.Struck:
		return styleStruck
	default:
		return styleText
	}
}

func (a *App) drawOverlay() {
	lines := []string{
		fmt.Sprintf("  %s WINS!  ", a.winner),
		"  press q to exit  ",
	}
	y := a.height/2 - 1
	for i, line := range lines {
		x := (a.width - len(line)) / 2
		a.drawText(x, y+i, line, styleOver)
	}
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.setCell(x+i, y, r, style)
	}
}

// setCell clips to the screen so a cramped terminal degrades instead of
// wrapping.
func (a *App) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}
