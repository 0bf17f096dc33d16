package terminal

import (
	"fmt"

	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog"

	tetris "github.com/jauhararifin/termtetris"
)

type Termbox struct {
	logger  zerolog.Logger
	events  chan termbox.Event
	done    chan struct{}
	pending []tetris.KeyEvent
	final   string
}

func OpenTermbox(logger zerolog.Logger) (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	t := &Termbox{
		logger: logger.With().Str("backend", BackendTermbox).Logger(),
		events: make(chan termbox.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.poll()
	t.logger.Debug().Msg("terminal opened")
	return t, nil
}

func (t *Termbox) poll() {
	defer close(t.done)
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case t.events <- ev:
		default:
			t.logger.Warn().Msg("input queue full, event dropped")
		}
	}
}

func (t *Termbox) Draw(frame string) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	drawFrame(frame, func(x, y int, ch rune) {
		termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
	})
	return termbox.Flush()
}

func (t *Termbox) GameOver(frame string) {
	if err := t.Draw(frame); err != nil {
		t.logger.Warn().Err(err).Msg("draw final frame")
	}
	t.final = frame
}

// Ready reports whether a key press is waiting. Other events are consumed and
// dropped on the way.
func (t *Termbox) Ready() bool {
	for len(t.pending) == 0 {
		select {
		case ev := <-t.events:
			switch ev.Type {
			case termbox.EventKey:
				t.pending = append(t.pending, termboxKey(ev))
			case termbox.EventError:
				t.logger.Warn().Err(ev.Err).Msg("terminal event error")
			}
		default:
			return false
		}
	}
	return true
}

func (t *Termbox) Read() (tetris.KeyEvent, error) {
	if !t.Ready() {
		return tetris.KeyEvent{}, ErrNoEvent
	}
	ev := t.pending[0]
	t.pending = t.pending[1:]
	return ev, nil
}

func (t *Termbox) Close() error {
	termbox.Interrupt()
	<-t.done
	termbox.Close()
	t.logger.Debug().Msg("terminal restored")
	report(stdout, t.final)
	return nil
}

func termboxKey(ev termbox.Event) tetris.KeyEvent {
	var mod tetris.Modifier
	if ev.Mod&termbox.ModAlt != 0 {
		mod |= tetris.ModAlt
	}

	if ev.Ch != 0 {
		return tetris.KeyEvent{Code: tetris.KeyRune, Rune: ev.Ch, Mod: mod}
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return tetris.KeyEvent{Code: tetris.KeyUp, Mod: mod}
	case termbox.KeyArrowDown:
		return tetris.KeyEvent{Code: tetris.KeyDown, Mod: mod}
	case termbox.KeyArrowLeft:
		return tetris.KeyEvent{Code: tetris.KeyLeft, Mod: mod}
	case termbox.KeyArrowRight:
		return tetris.KeyEvent{Code: tetris.KeyRight, Mod: mod}
	case termbox.KeyEsc:
		return tetris.KeyEvent{Code: tetris.KeyEsc, Mod: mod}
	case termbox.KeySpace:
		return tetris.KeyEvent{Code: tetris.KeyRune, Rune: ' ', Mod: mod}
	}
	// termbox reports Ctrl+A..Ctrl+Z as the control codes 0x01..0x1a
	if ev.Key >= termbox.KeyCtrlA && ev.Key <= termbox.KeyCtrlZ {
		return tetris.KeyEvent{Code: tetris.KeyRune, Rune: rune('a' + ev.Key - termbox.KeyCtrlA), Mod: mod | tetris.ModCtrl}
	}
	return tetris.KeyEvent{Code: tetris.KeyUnknown, Mod: mod}
}
