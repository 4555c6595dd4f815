// Package render lays the playfield, score line and banners out on a character-cell canvas.
package render

import "github.com/lixenwraith/snake/constants"

// Canvas is a fixed-width character grid. Coordinates are 0-indexed screen cells.
// Writes may be buffered until Show.
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, r rune)
	Clear()
	Show()
}

// FieldSize converts a terminal size to playfield extents by removing the frame and score line
func FieldSize(termWidth, termHeight int) (width, height int) {
	return termWidth - constants.BorderMarginX, termHeight - constants.BorderMarginY
}
