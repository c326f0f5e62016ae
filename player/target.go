package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MaslovStas/BattleSea/engine"
)

// ParseTarget converts a console target such as "B7" or "c10" into
// 0-based board coordinates: the letter names the row, the 1-based
// number the column. Targets off the size x size grid fail with
// ErrOutOfBoard; anything unparseable fails with a plain error.
func ParseTarget(s string, size int) (row, col int, err error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("target %q: want a row letter followed by a column number", s)
	}

	letter := s[0]
	switch {
	case 'A' <= letter && letter <= 'Z':
		row = int(letter - 'A')
	case 'a' <= letter && letter <= 'z':
		row = int(letter - 'a')
	default:
		return 0, 0, fmt.Errorf("target %q: %q is not a row letter", s, letter)
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("target %q: %q is not a column number", s, s[1:])
	}
	col = n - 1

	if row >= size || col < 0 || col >= size {
		return 0, 0, fmt.Errorf("%w: %s", engine.ErrOutOfBoard, s)
	}
	return row, col, nil
}

// FormatTarget renders 0-based board coordinates in the console target
// form: row 1, column 6 becomes "B7".
func FormatTarget(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(row), col+1)
}
