// Package render draws boards as text: a numbered header row, lettered
// grid rows with one glyph per cell, and a dash ruler after the board.
// The same glyph mapping feeds the console and the full-screen front-end.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MaslovStas/BattleSea/engine"
)

// Cell glyphs. Sunk is resolved at the ship level while drawing: a
// struck cell of a dead ship darkens from struck to sunk.
const (
	Background rune = '*'
	Intact     rune = '▢'
	Struck     rune = '▩'
	Sunk       rune = '■'
)

// separatorWidth is the dash ruler printed after a board.
const separatorWidth = 30

// Options control how a board is drawn.
type Options struct {
	// FogOfWar hides intact ship cells behind the background glyph, for
	// the enemy view. Struck and sunk cells stay visible.
	FogOfWar bool
}

// CellRune returns the glyph for one grid cell, nil meaning open water.
func CellRune(c *engine.Cell, fog bool) rune {
	switch {
	case c == nil:
		return Background
	case c.Intact():
		if fog {
			return Background
		}
		return Intact
	case !c.Ship().Alive():
		return Sunk
	default:
		return Struck
	}
}

// BoardRows renders the board as display lines: the column header
// first, then one lettered row per grid row, cells separated by bars.
func BoardRows(board *engine.Board, opts Options) []string {
	rows := make([]string, 0, board.Size()+1)

	var b strings.Builder
	b.WriteByte('X')
	for col := 1; col <= board.Size(); col++ {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(col))
	}
	rows = append(rows, b.String())

	for i, gridRow := range board.Grid() {
		b.Reset()
		b.WriteByte('A' + byte(i))
		for _, c := range gridRow {
			b.WriteByte('|')
			b.WriteRune(CellRune(c, opts.FogOfWar))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// WriteBoard prints the board to w, closing with the dash ruler.
func WriteBoard(w io.Writer, board *engine.Board, opts Options) error {
	for _, row := range BoardRows(board, opts) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
	return err
}
