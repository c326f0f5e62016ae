package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/MaslovStas/BattleSea/engine"
)

// Human reads shot targets line by line from a console reader.
type Human struct {
	base
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman creates the console player reading targets from in and
// writing prompts and outcomes to out.
func NewHuman(name string, board *engine.Board, in io.Reader, out io.Writer) *Human {
	return &Human{
		base: base{name: name, board: board},
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Shoot prompts for a target until a shot resolves, announcing the
// outcome and reporting whether it hit. Malformed and refused targets
// print a message and re-prompt; the only error is an exhausted reader.
func (h *Human) Shoot(opponent Player) (bool, error) {
	for {
		fmt.Fprint(h.out, "Enter the shot target, letter then number (e.g. B7): ")
		if !h.in.Scan() {
			err := h.in.Err()
			if err == nil {
				err = io.EOF
			}
			return false, err
		}

		row, col, err := ParseTarget(h.in.Text(), opponent.Board().Size())
		if err != nil {
			if errors.Is(err, engine.ErrOutOfBoard) {
				fmt.Fprintln(h.out, "The target is outside the board!")
			} else {
				fmt.Fprintln(h.out, "Invalid target!")
			}
			continue
		}

		res, err := opponent.Board().Hit(row, col)
		if err != nil {
			if errors.Is(err, engine.ErrRepeatShot) {
				fmt.Fprintln(h.out, "That field was already hit!")
			} else {
				fmt.Fprintln(h.out, "The target is outside the board!")
			}
			continue
		}

		announce(h.out, res)
		return res != engine.ShotMiss, nil
	}
}
