// Package tui implements the interactive terminal play loop: it puts
// the terminal into raw mode, reads single keystrokes, and drives one
// puzzle's engine.State to a win or an exit.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
)

// Run plays one puzzle interactively on stdin/stdout until the player
// wins or quits. Keys: w/a/s/d or arrow keys move, z undoes the last
// accepted move, r resets to the initial state, q or Escape exits.
func Run(initial engine.State, win *engine.WinConfig) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("tui: failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	history := []engine.State{initial.Clone()}
	current := initial.Clone()

	printState(&current)

	if current.IsSuccessOn(win) {
		fmt.Print("\r\nSuccess\r\n")
		return nil
	}

	reader := bufReader{r: os.Stdin}
	for {
		dir, action, err := readAction(&reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionReset:
			current = history[0].Clone()
			history = history[:1]
			printState(&current)
			continue
		case actionUndo:
			if len(history) > 1 {
				history = history[:len(history)-1]
				current = history[len(history)-1].Clone()
			}
			printState(&current)
			continue
		}

		if _, err := current.Go(dir); err != nil {
			// Move rejected: state unchanged, history untouched.
			continue
		}

		history = append(history, current.Clone())
		printState(&current)

		if current.IsSuccessOn(win) {
			fmt.Print("\r\nSuccess\r\n")
			return nil
		}
	}
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionReset
	actionUndo
)

// bufReader reads raw bytes from stdin one at a time, also decoding
// the ESC [ A/B/C/D arrow-key escape sequences emitted in raw mode.
type bufReader struct {
	r io.Reader
}

func (b *bufReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readAction blocks for the next keystroke and translates it into a
// direction or a control action.
func readAction(b *bufReader) (engine.Direction, action, error) {
	c, err := b.readByte()
	if err != nil {
		return 0, actionNone, err
	}

	switch c {
	case 'w', 'W':
		return engine.Up, actionNone, nil
	case 's', 'S':
		return engine.Down, actionNone, nil
	case 'a', 'A':
		return engine.Left, actionNone, nil
	case 'd', 'D':
		return engine.Right, actionNone, nil
	case 'z', 'Z':
		return 0, actionUndo, nil
	case 'r', 'R':
		return 0, actionReset, nil
	case 'q', 'Q', 3: // 3 == Ctrl-C
		return 0, actionQuit, nil
	case 0x1b: // ESC, possibly the start of an arrow-key sequence
		next, err := b.readByte()
		if err != nil || next != '[' {
			return 0, actionQuit, nil
		}
		arrow, err := b.readByte()
		if err != nil {
			return 0, actionNone, err
		}
		switch arrow {
		case 'A':
			return engine.Up, actionNone, nil
		case 'B':
			return engine.Down, actionNone, nil
		case 'C':
			return engine.Right, actionNone, nil
		case 'D':
			return engine.Left, actionNone, nil
		default:
			return 0, actionNone, nil
		}
	default:
		return 0, actionNone, nil
	}
}

// printState renders the current state to the terminal. Raw mode
// disables the usual \n -> \r\n translation, so every line break is
// written explicitly as \r\n.
func printState(s *engine.State) {
	rendered := config.RenderDebug(s)
	for _, line := range splitLines(rendered) {
		fmt.Fprint(os.Stdout, line, "\r\n")
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
