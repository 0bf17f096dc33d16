// Package terminal puts the game on a real terminal. Opening a backend switches
// the terminal to raw mode, closing it restores the original mode.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	tetris "github.com/jauhararifin/termtetris"
)

var ErrNoEvent = errors.New("no pending key event")

// Terminal is both the display and the keyboard of a game. Close must be
// called on every exit path.
type Terminal interface {
	tetris.Display
	tetris.Input
	Close() error
}

const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

// eventBuffer is how many raw events the poller queues before dropping.
const eventBuffer = 64

func Open(backend string, logger zerolog.Logger) (Terminal, error) {
	switch backend {
	case "", BackendTermbox:
		return OpenTermbox(logger)
	case BackendTcell:
		return OpenTcell(logger)
	}
	return nil, fmt.Errorf("unknown terminal backend %q", backend)
}

// drawFrame walks a rendered frame and calls set for every glyph with its
// screen position. Columns advance by the display width of each glyph.
func drawFrame(frame string, set func(x, y int, ch rune)) {
	lines := strings.Split(strings.TrimRight(frame, "\r\n"), "\r\n")
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			set(x, y, ch)
			w := runewidth.RuneWidth(ch)
			if w < 1 {
				w = 1
			}
			x += w
		}
	}
}

// report prints the last frame and the game over notice once the terminal is
// back in its normal mode.
func report(w io.Writer, frame string) {
	if frame == "" {
		return
	}
	fmt.Fprint(w, frame)
	fmt.Fprintln(w, "Game over!")
}

var stdout io.Writer = os.Stdout
