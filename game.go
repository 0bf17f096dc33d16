package tetris

import (
	"fmt"
	"time"
)

type Action int

const (
	ActionGoDown Action = iota
	ActionGoLeft
	ActionGoRight
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionGoDown:
		return "down"
	case ActionGoLeft:
		return "left"
	case ActionGoRight:
		return "right"
	case ActionRotate:
		return "rotate"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type Direction int

const (
	DirectionDown Direction = iota
	DirectionLeft
	DirectionRight
)

type Status int

const (
	StatusFalling Status = iota
	StatusOver
)

func (s Status) String() string {
	if s == StatusOver {
		return "over"
	}
	return "falling"
}

type CompleteHandler interface {
	OnCompleted(rows int)
}

type CompleteHandlerFunc func(rows int)

func (f CompleteHandlerFunc) OnCompleted(rows int) {
	f(rows)
}

type Game struct {
	getter          KindGetter
	completeHandler CompleteHandler
	width, height   int

	board  *Board
	piece  Piece
	status Status
}

type GameOption func(*Game)

func WithSize(width, height int) GameOption {
	if width < 4 || height < 4 {
		panic(fmt.Errorf("minimal width x height is 4x4"))
	}
	return func(game *Game) {
		game.width = width
		game.height = height
	}
}

func WithGetter(getter KindGetter) GameOption {
	return func(game *Game) {
		game.getter = getter
	}
}

func WithCompleteHandler(handler CompleteHandler) GameOption {
	return func(game *Game) {
		game.completeHandler = handler
	}
}

func NewGame(options ...GameOption) *Game {
	game := &Game{
		getter: NewRandomGetter(time.Now().UnixNano()),
		width:  20,
		height: 30,
	}
	for _, opt := range options {
		opt(game)
	}

	game.board = NewBoard(game.width, game.height)
	game.spawn()
	game.status = StatusFalling

	return game
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Piece() Piece {
	return g.piece
}

func (g *Game) Status() Status {
	return g.status
}

// SpawnPoint is where every new piece is anchored.
func (g *Game) SpawnPoint() Point {
	return Point{X: g.width / 2, Y: g.height - 1}
}

func (g *Game) Render(glyphs Glyphs) string {
	return Render(g.board, g.piece, glyphs)
}

// Apply performs one action. Rejected moves are not errors; an error means the
// active piece reached a position the move checks should have prevented.
func (g *Game) Apply(action Action) (Status, error) {
	if g.status == StatusOver {
		return g.status, nil
	}

	switch action {
	case ActionGoDown:
		return g.Move(DirectionDown)
	case ActionGoLeft:
		return g.Move(DirectionLeft)
	case ActionGoRight:
		return g.Move(DirectionRight)
	case ActionRotate:
		return g.Rotate(), nil
	}
	return g.status, nil
}

// Move shifts the active piece one cell. A blocked sideways move is ignored, a
// blocked downward move locks the piece.
func (g *Game) Move(direction Direction) (Status, error) {
	if g.status == StatusOver {
		return g.status, nil
	}

	anchor := g.piece.Anchor
	switch direction {
	case DirectionLeft:
		anchor.X--
	case DirectionRight:
		anchor.X++
	case DirectionDown:
		anchor.Y--
	}

	cells := Realize(g.piece.Kind, g.piece.Rotation, anchor)
	if g.board.Fits(cells[:]...) {
		g.piece.Anchor = anchor
		return g.status, nil
	}
	if direction == DirectionDown {
		return g.lock()
	}
	return g.status, nil
}

// Rotate turns the active piece clockwise in place if the result fits.
func (g *Game) Rotate() Status {
	if g.status == StatusOver {
		return g.status
	}

	rotation := g.piece.Rotation.Next()
	cells := Realize(g.piece.Kind, rotation, g.piece.Anchor)
	if g.board.Fits(cells[:]...) {
		g.piece.Rotation = rotation
	}
	return g.status
}

func (g *Game) lock() (Status, error) {
	for _, c := range g.piece.Cells() {
		if c.Y >= g.height {
			g.status = StatusOver
			return g.status, nil
		}
		if err := g.board.Commit(c); err != nil {
			return g.status, fmt.Errorf("lock %s piece at (%d,%d) rotated %s: %w",
				g.piece.Kind, g.piece.Anchor.X, g.piece.Anchor.Y, g.piece.Rotation, err)
		}
	}

	rows := g.board.ClearFullRows()
	if g.completeHandler != nil {
		g.completeHandler.OnCompleted(rows)
	}
	g.spawn()
	return g.status, nil
}

func (g *Game) spawn() {
	g.piece = Piece{
		Kind:     g.getter.Next(),
		Rotation: RotationUp,
		Anchor:   g.SpawnPoint(),
	}
}
