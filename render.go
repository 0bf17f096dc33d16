package tetris

import "strings"

type Glyphs struct {
	Block rune
	Piece rune
	Empty rune
}

var DefaultGlyphs = Glyphs{Block: 'X', Piece: 'O', Empty: ' '}

// Render draws the board with the active piece on top, highest row first.
// Rows end in "\r\n" so the frame prints correctly in raw mode.
func Render(board *Board, piece Piece, glyphs Glyphs) string {
	active := piece.Cells()

	var sb strings.Builder
	sb.Grow(board.height * (board.width + 2))
	for y := board.height - 1; y >= 0; y-- {
		for x := 0; x < board.width; x++ {
			switch {
			case board.cells[y][x]:
				sb.WriteRune(glyphs.Block)
			case covers(active, x, y):
				sb.WriteRune(glyphs.Piece)
			default:
				sb.WriteRune(glyphs.Empty)
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}

func covers(cells [4]Point, x, y int) bool {
	for _, c := range cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
