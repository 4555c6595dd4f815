package render

import (
	"strconv"
	"unicode/utf8"

	"github.com/lixenwraith/snake/constants"
)

// Surface draws the game onto a Canvas.
// Field cell (x, y) lands on screen cell (x+1, y+1), inside a one cell frame.
// The score line sits on the row below the bottom frame.
type Surface struct {
	canvas Canvas

	// Canvas extents, refreshed on every full redraw
	width  int
	height int

	fieldWidth  int
	fieldHeight int
}

// NewSurface creates a surface over the canvas
func NewSurface(canvas Canvas) *Surface {
	s := &Surface{canvas: canvas}
	s.refreshSize()
	return s
}

// DrawCell draws a glyph at a field coordinate
func (s *Surface) DrawCell(x, y int, glyph rune) {
	s.put(x+1, y+1, glyph)
}

// ClearAndDrawBorder wipes the screen and frames a width x height field with the score line under it
func (s *Surface) ClearAndDrawBorder(width, height int) {
	s.fieldWidth = width
	s.fieldHeight = height

	s.refreshSize()
	s.canvas.Clear()

	right := width + 1
	bottom := height + 1

	s.put(0, 0, constants.GlyphBorderTopLeft)
	s.put(right, 0, constants.GlyphBorderTopRight)
	s.put(0, bottom, constants.GlyphBorderBottomLeft)
	s.put(right, bottom, constants.GlyphBorderBottomRight)

	for x := 1; x < right; x++ {
		s.put(x, 0, constants.GlyphBorderHorizontal)
		s.put(x, bottom, constants.GlyphBorderHorizontal)
	}
	for y := 1; y < bottom; y++ {
		s.put(0, y, constants.GlyphBorderVertical)
		s.put(right, y, constants.GlyphBorderVertical)
	}

	s.DrawScore(0)
}

// DrawScore renders the score line at a fixed location below the field
func (s *Surface) DrawScore(value int) {
	s.text(0, s.fieldHeight+2, constants.ScoreLabel+strconv.Itoa(value))
	s.canvas.Show()
}

// DrawWelcomeBanner clears the screen and centers the title art and start prompt
func (s *Surface) DrawWelcomeBanner() {
	s.banner(constants.WelcomeBanner, constants.WelcomePrompt)
}

// DrawGameOverBanner clears the screen and centers the game over art
func (s *Surface) DrawGameOverBanner() {
	s.banner(constants.GameOverBanner, constants.GameOverPrompt)
}

// Flush pushes buffered cell draws to the screen
func (s *Surface) Flush() {
	s.canvas.Show()
}

// banner centers art plus a prompt two lines below it.
// Art wider than the canvas is left out and only the prompt is drawn.
func (s *Surface) banner(art []string, prompt string) {
	s.refreshSize()
	s.canvas.Clear()

	w, h := s.width, s.height
	if artWidth(art) > w {
		art = nil
	}

	total := 1
	if len(art) > 0 {
		total = len(art) + 2
	}
	top := (h - total) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range art {
		s.text(centerX(w, line), top+i, line)
	}
	s.text(centerX(w, prompt), top+total-1, prompt)

	s.canvas.Show()
}

// text writes a string left to right starting at a screen cell
func (s *Surface) text(x, y int, str string) {
	for _, r := range str {
		s.put(x, y, r)
		x++
	}
}

// put writes one screen cell, dropping anything outside the canvas
func (s *Surface) put(x, y int, r rune) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.canvas.SetContent(x, y, r)
}

func (s *Surface) refreshSize() {
	s.width, s.height = s.canvas.Size()
}

func artWidth(art []string) int {
	w := 0
	for _, line := range art {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

func centerX(width int, line string) int {
	x := (width - utf8.RuneCountInString(line)) / 2
	if x < 0 {
		return 0
	}
	return x
}
