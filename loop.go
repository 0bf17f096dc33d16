package tetris

import (
	"time"

	"github.com/rs/zerolog"
)

// Display shows rendered frames. Draw replaces whatever was on screen.
type Display interface {
	Draw(frame string) error
	GameOver(frame string)
}

// Input hands out pending key presses without blocking.
type Input interface {
	Ready() bool
	Read() (KeyEvent, error)
}

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

type Outcome int

const (
	OutcomeGameOver Outcome = iota
	OutcomeQuit
)

func (o Outcome) String() string {
	if o == OutcomeQuit {
		return "quit"
	}
	return "game-over"
}

type Loop struct {
	game    *Game
	display Display
	input   Input
	clock   Clock
	glyphs  Glyphs
	logger  zerolog.Logger

	updateInterval time.Duration
	frameInterval  time.Duration
}

type LoopOption func(*Loop)

func WithUpdateInterval(interval time.Duration) LoopOption {
	return func(loop *Loop) {
		loop.updateInterval = interval
	}
}

func WithFrameInterval(interval time.Duration) LoopOption {
	return func(loop *Loop) {
		loop.frameInterval = interval
	}
}

func WithClock(clock Clock) LoopOption {
	return func(loop *Loop) {
		loop.clock = clock
	}
}

func WithGlyphs(glyphs Glyphs) LoopOption {
	return func(loop *Loop) {
		loop.glyphs = glyphs
	}
}

func WithLogger(logger zerolog.Logger) LoopOption {
	return func(loop *Loop) {
		loop.logger = logger
	}
}

func NewLoop(game *Game, display Display, input Input, options ...LoopOption) *Loop {
	loop := &Loop{
		game:           game,
		display:        display,
		input:          input,
		clock:          systemClock{},
		glyphs:         DefaultGlyphs,
		logger:         zerolog.Nop(),
		updateInterval: 1000 * time.Millisecond,
		frameInterval:  time.Second / 30,
	}
	for _, opt := range options {
		opt(loop)
	}
	return loop
}

// Run plays until the game is over or the player quits. Each pass draws a
// frame, drains pending input, applies at most one owed gravity tick and then
// sleeps off the rest of the frame. The returned error is an engine invariant
// violation and leaves the game unusable.
func (l *Loop) Run() (Outcome, error) {
	updateClock := l.clock.Now()
	frameClock := updateClock

	for {
		if err := l.display.Draw(l.game.Render(l.glyphs)); err != nil {
			l.logger.Warn().Err(err).Msg("draw frame")
		}

		quit, status, err := l.drain()
		if err != nil {
			return OutcomeGameOver, err
		}
		if quit {
			l.logger.Info().Msg("player quit")
			return OutcomeQuit, nil
		}

		if status == StatusFalling && l.clock.Now().Sub(updateClock) >= l.updateInterval {
			updateClock = updateClock.Add(l.updateInterval)
			l.logger.Debug().Int("x", l.game.Piece().Anchor.X).Int("y", l.game.Piece().Anchor.Y).Msg("gravity tick")
			status, err = l.apply(ActionGoDown)
			if err != nil {
				return OutcomeGameOver, err
			}
		}

		if status == StatusOver {
			l.logger.Info().Int("cells", l.game.Board().Count()).Msg("game over")
			l.display.GameOver(l.game.Render(l.glyphs))
			return OutcomeGameOver, nil
		}

		frameClock = frameClock.Add(l.frameInterval)
		if wait := frameClock.Sub(l.clock.Now()); wait > 0 {
			l.clock.Sleep(wait)
		}
	}
}

func (l *Loop) drain() (bool, Status, error) {
	status := l.game.Status()
	for status == StatusFalling && l.input.Ready() {
		ev, err := l.input.Read()
		if err != nil {
			l.logger.Warn().Err(err).Msg("read key")
			break
		}
		if ev.Quit() {
			return true, status, nil
		}
		action, ok := ev.Action()
		if !ok {
			l.logger.Debug().Int("code", int(ev.Code)).Str("rune", string(ev.Rune)).Msg("unbound key")
			continue
		}
		status, err = l.apply(action)
		if err != nil {
			return false, status, err
		}
	}
	return false, status, nil
}

func (l *Loop) apply(action Action) (Status, error) {
	before := l.game.Piece()
	status, err := l.game.Apply(action)
	if err != nil {
		l.logger.Error().Err(err).Stringer("action", action).Msg("apply action")
		return status, err
	}
	if action != ActionGoDown {
		return status, nil
	}
	// a down move that did not land one row lower locked the piece
	after := l.game.Piece()
	if after.Anchor != (Point{X: before.Anchor.X, Y: before.Anchor.Y - 1}) {
		l.logger.Debug().Stringer("kind", before.Kind).Int("x", before.Anchor.X).Int("y", before.Anchor.Y).
			Stringer("next", after.Kind).Stringer("status", status).Msg("piece locked")
	}
	return status, nil
}
