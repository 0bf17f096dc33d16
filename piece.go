package tetris

import "fmt"

type Kind int

const (
	KindSquare Kind = iota
	KindLeftL
	KindRightL
	KindLightningUp
	KindLightningDown
	KindLine
	KindProd
)

// Kinds lists every piece kind in table order.
var Kinds = []Kind{
	KindSquare,
	KindLeftL,
	KindRightL,
	KindLightningUp,
	KindLightningDown,
	KindLine,
	KindProd,
}

func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindLeftL:
		return "left-l"
	case KindRightL:
		return "right-l"
	case KindLightningUp:
		return "lightning-up"
	case KindLightningDown:
		return "lightning-down"
	case KindLine:
		return "line"
	case KindProd:
		return "prod"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Rotation int

const (
	RotationUp Rotation = iota
	RotationRight
	RotationDown
	RotationLeft
)

// Next returns the rotation one quarter turn clockwise.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

func (r Rotation) String() string {
	switch r {
	case RotationUp:
		return "up"
	case RotationRight:
		return "right"
	case RotationDown:
		return "down"
	case RotationLeft:
		return "left"
	}
	return fmt.Sprintf("rotation(%d)", int(r))
}

type Point struct {
	X, Y int
}

// Piece is the falling piece: its shape, orientation and anchor on the board.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Anchor   Point
}

func (p Piece) Cells() [4]Point {
	return Realize(p.Kind, p.Rotation, p.Anchor)
}

// shapes holds the cell offsets of every kind for every rotation, relative to
// the anchor. Each rotation is the previous one mapped by (dx, dy) -> (-dy, dx).
var shapes = [7][4][4]Point{
	KindSquare: {
		{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
		{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
		{{0, -1}, {-1, -1}, {0, 0}, {-1, 0}},
		{{1, 0}, {1, -1}, {0, 0}, {0, -1}},
	},
	KindLeftL: {
		{{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{1, 0}, {0, 0}, {-1, 0}, {-1, -1}},
	},
	KindRightL: {
		{{1, 1}, {1, 0}, {0, -1}, {1, -1}},
		{{-1, 1}, {0, 1}, {1, 0}, {1, 1}},
		{{-1, -1}, {-1, 0}, {0, 1}, {-1, 1}},
		{{1, -1}, {0, -1}, {-1, 0}, {-1, -1}},
	},
	KindLightningUp: {
		{{1, 1}, {0, 0}, {1, 0}, {0, -1}},
		{{-1, 1}, {0, 0}, {0, 1}, {1, 0}},
		{{-1, -1}, {0, 0}, {-1, 0}, {0, 1}},
		{{1, -1}, {0, 0}, {0, -1}, {-1, 0}},
	},
	KindLightningDown: {
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
		{{1, 0}, {0, 0}, {0, -1}, {-1, -1}},
	},
	KindLine: {
		{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
	},
	KindProd: {
		{{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, 0}, {0, -1}, {0, 0}, {0, 1}},
		{{0, -1}, {1, 0}, {0, 0}, {-1, 0}},
		{{1, 0}, {0, 1}, {0, 0}, {0, -1}},
	},
}

// Realize returns the board cells occupied by a piece of the given kind and
// rotation placed at anchor. The cells may lie outside the board.
func Realize(kind Kind, rotation Rotation, anchor Point) [4]Point {
	var cells [4]Point
	for i, offset := range shapes[kind][rotation] {
		cells[i] = Point{X: anchor.X + offset.X, Y: anchor.Y + offset.Y}
	}
	return cells
}
