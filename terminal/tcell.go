package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	tetris "github.com/jauhararifin/termtetris"
)

type Tcell struct {
	screen  tcell.Screen
	logger  zerolog.Logger
	events  chan tcell.Event
	done    chan struct{}
	pending []tetris.KeyEvent
	final   string
}

func OpenTcell(logger zerolog.Logger) (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}
	screen.HideCursor()

	t := &Tcell{
		screen: screen,
		logger: logger.With().Str("backend", BackendTcell).Logger(),
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.poll()
	t.logger.Debug().Msg("terminal opened")
	return t, nil
}

func (t *Tcell) poll() {
	defer close(t.done)
	for {
		// nil once the screen is finalized
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		default:
			t.logger.Warn().Msg("input queue full, event dropped")
		}
	}
}

// Draw never fails: tcell buffers cells and Show reports nothing.
func (t *Tcell) Draw(frame string) error {
	t.screen.Clear()
	drawFrame(frame, func(x, y int, ch rune) {
		t.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
	})
	t.screen.Show()
	return nil
}

func (t *Tcell) GameOver(frame string) {
	if err := t.Draw(frame); err != nil {
		t.logger.Warn().Err(err).Msg("draw final frame")
	}
	t.final = frame
}

func (t *Tcell) Ready() bool {
	for len(t.pending) == 0 {
		select {
		case ev := <-t.events:
			if key, ok := ev.(*tcell.EventKey); ok {
				t.pending = append(t.pending, tcellKey(key))
			}
		default:
			return false
		}
	}
	return true
}

func (t *Tcell) Read() (tetris.KeyEvent, error) {
	if !t.Ready() {
		return tetris.KeyEvent{}, ErrNoEvent
	}
	ev := t.pending[0]
	t.pending = t.pending[1:]
	return ev, nil
}

func (t *Tcell) Close() error {
	t.screen.Fini()
	<-t.done
	t.logger.Debug().Msg("terminal restored")
	report(stdout, t.final)
	return nil
}

func tcellKey(ev *tcell.EventKey) tetris.KeyEvent {
	var mod tetris.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= tetris.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= tetris.ModAlt
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return tetris.KeyEvent{Code: tetris.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return tetris.KeyEvent{Code: tetris.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return tetris.KeyEvent{Code: tetris.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return tetris.KeyEvent{Code: tetris.KeyRight, Mod: mod}
	case tcell.KeyEscape:
		return tetris.KeyEvent{Code: tetris.KeyEsc, Mod: mod}
	case tcell.KeyRune:
		return tetris.KeyEvent{Code: tetris.KeyRune, Rune: ev.Rune(), Mod: mod}
	case tcell.KeyCtrlC:
		return tetris.KeyEvent{Code: tetris.KeyRune, Rune: 'c', Mod: mod | tetris.ModCtrl}
	}
	return tetris.KeyEvent{Code: tetris.KeyUnknown, Mod: mod}
}
