package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MaslovStas/BattleSea/engine"
)

// twoCellBoard places a single length-2 horizontal ship in the top-left
// corner, occupying A1 and A2.
func twoCellBoard(t *testing.T) *engine.Board {
	t.Helper()
	b := engine.NewEmptyBoard(engine.DefaultSize, engine.NewRand(1))
	if err := b.PlaceShipAt(engine.NewShip(2, engine.Horizontal), 0, 0); err != nil {
		t.Fatalf("PlaceShipAt failed: %v", err)
	}
	return b
}

func TestBoardRowsLayout(t *testing.T) {
	rows := BoardRows(twoCellBoard(t), Options{})

	if len(rows) != 11 {
		t.Fatalf("Expected 11 rows, got %d", len(rows))
	}
	if rows[0] != "X|1|2|3|4|5|6|7|8|9|10" {
		t.Errorf("Expected the numbered header, got %q", rows[0])
	}
	if rows[1] != "A|▢|▢|*|*|*|*|*|*|*|*" {
		t.Errorf("Expected the ship on row A, got %q", rows[1])
	}
	if rows[2] != "B|*|*|*|*|*|*|*|*|*|*" {
		t.Errorf("Expected open water on row B, got %q", rows[2])
	}
	if !strings.HasPrefix(rows[10], "J|") {
		t.Errorf("Expected the last row lettered J, got %q", rows[10])
	}
}

func TestBoardRowsDamageProgression(t *testing.T) {
	b := twoCellBoard(t)

	if _, err := b.Hit(0, 0); err != nil {
		t.Fatalf("Hit failed: %v", err)
	}
	rows := BoardRows(b, Options{})
	if rows[1] != "A|▩|▢|*|*|*|*|*|*|*|*" {
		t.Errorf("Expected a struck first cell, got %q", rows[1])
	}

	if _, err := b.Hit(0, 1); err != nil {
		t.Fatalf("Hit failed: %v", err)
	}
	rows = BoardRows(b, Options{})
	if rows[1] != "A|■|■|*|*|*|*|*|*|*|*" {
		t.Errorf("Expected the sunk ship glyphs, got %q", rows[1])
	}
}

func TestBoardRowsFogOfWar(t *testing.T) {
	b := twoCellBoard(t)

	rows := BoardRows(b, Options{FogOfWar: true})
	if rows[1] != "A|*|*|*|*|*|*|*|*|*|*" {
		t.Errorf("Expected the intact ship hidden, got %q", rows[1])
	}

	// Damage stays visible through the fog.
	if _, err := b.Hit(0, 0); err != nil {
		t.Fatalf("Hit failed: %v", err)
	}
	rows = BoardRows(b, Options{FogOfWar: true})
	if rows[1] != "A|▩|*|*|*|*|*|*|*|*|*" {
		t.Errorf("Expected the struck cell through fog, got %q", rows[1])
	}
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBoard(&buf, twoCellBoard(t), Options{}); err != nil {
		t.Fatalf("WriteBoard failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("Expected 12 lines with the ruler, got %d", len(lines))
	}
	if lines[11] != strings.Repeat("-", 30) {
		t.Errorf("Expected the 30-dash ruler, got %q", lines[11])
	}
}

func TestCellRune(t *testing.T) {
	b := twoCellBoard(t)
	s := b.Ships()[0]

	if got := CellRune(nil, false); got != Background {
		t.Errorf("Expected background for open water, got %q", got)
	}
	if got := CellRune(s.Cell(0), false); got != Intact {
		t.Errorf("Expected intact glyph, got %q", got)
	}
	if got := CellRune(s.Cell(0), true); got != Background {
		t.Errorf("Expected fog to hide the intact cell, got %q", got)
	}

	if _, err := b.Hit(0, 0); err != nil {
		t.Fatalf("Hit failed: %v", err)
	}
	if got := CellRune(s.Cell(0), false); got != Struck {
		t.Errorf("Expected struck glyph, got %q", got)
	}

	if _, err := b.Hit(0, 1); err != nil {
		t.Fatalf("Hit failed: %v", err)
	}
	if got := CellRune(s.Cell(0), true); got != Sunk {
		t.Errorf("Expected sunk glyph, got %q", got)
	}
}
