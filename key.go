package tetris

type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyRune
)

type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// KeyEvent is a single key press. Rune is only set when Code is KeyRune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// Quit reports whether the key ends the game: q, Esc or Ctrl+C.
func (ev KeyEvent) Quit() bool {
	switch ev.Code {
	case KeyEsc:
		return true
	case KeyRune:
		if ev.Mod&ModCtrl != 0 {
			return ev.Rune == 'c' || ev.Rune == 'C'
		}
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}

// Action maps the key to a game action. Arrows and hjkl are bound; Up and k
// rotate instead of moving up.
func (ev KeyEvent) Action() (Action, bool) {
	switch ev.Code {
	case KeyUp:
		return ActionRotate, true
	case KeyDown:
		return ActionGoDown, true
	case KeyLeft:
		return ActionGoLeft, true
	case KeyRight:
		return ActionGoRight, true
	case KeyRune:
		if ev.Mod != 0 {
			return 0, false
		}
		switch ev.Rune {
		case 'k':
			return ActionRotate, true
		case 'j':
			return ActionGoDown, true
		case 'h':
			return ActionGoLeft, true
		case 'l':
			return ActionGoRight, true
		}
	}
	return 0, false
}
