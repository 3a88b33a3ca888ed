package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide, so one board
// cell is drawn as two columns on one row.
const (
	cellCols = 2
	cellRows = 1

	// BoardCols and BoardRows are the framed board size in screen cells.
	BoardCols = Cols*cellCols + 2
	BoardRows = Rows*cellRows + 2
)

// Canvas is the drawing surface a State is rendered onto.
// Coordinates are board pixels; DrawText centers the text horizontally.
type Canvas interface {
	DrawRect(x, y, w, h int, c core.Color)
	DrawOval(x, y, w, h int, c core.Color)
	DrawText(y int, text string, c core.Color)
}

// Theme holds the colors and glyphs used to draw the board.
type Theme struct {
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Text   core.Color
	Border core.Color

	RectGlyph [cellCols]rune
	OvalGlyph [cellCols]rune
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	th, err := NewTheme(config.Default().Theme)
	if err != nil {
		panic(fmt.Sprintf("snake: invalid built-in theme: %v", err))
	}
	return th
}

// NewTheme resolves color names and glyph strings from configuration.
func NewTheme(tc config.ThemeConfig) (Theme, error) {
	var th Theme
	colors := []struct {
		name string
		dst  *core.Color
	}{
		{tc.Head, &th.Head},
		{tc.Body, &th.Body},
		{tc.Food, &th.Food},
		{tc.Text, &th.Text},
		{tc.Border, &th.Border},
	}
	for _, c := range colors {
		parsed, err := core.ParseColor(c.name)
		if err != nil {
			return Theme{}, fmt.Errorf("snake: theme: %w", err)
		}
		*c.dst = parsed
	}

	var err error
	if th.RectGlyph, err = parseGlyph(tc.RectGlyph); err != nil {
		return Theme{}, err
	}
	if th.OvalGlyph, err = parseGlyph(tc.OvalGlyph); err != nil {
		return Theme{}, err
	}
	return th, nil
}

func parseGlyph(s string) ([cellCols]rune, error) {
	var g [cellCols]rune
	if utf8.RuneCountInString(s) != cellCols {
		return g, fmt.Errorf("snake: theme: glyph %q must be %d characters", s, cellCols)
	}
	i := 0
	for _, r := range s {
		g[i] = r
		i++
	}
	return g, nil
}

// Draw renders a State the way the classic game does: food, the snake with
// a distinct head, and the score. A finished game shows only the score and
// a Game Over banner.
func Draw(c Canvas, s *State, th Theme) {
	score := fmt.Sprintf("Score: %d", s.Score())

	if !s.IsRunning() {
		c.DrawText(0, score, th.Text)
		c.DrawText(Height/2, "Game Over", th.Text)
		return
	}

	food := s.Food()
	c.DrawOval(food.X, food.Y, CellSize, CellSize, th.Food)

	// Tail first so the head stays visible where segments overlap.
	segs := s.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		color := th.Body
		if i == 0 {
			color = th.Head
		}
		c.DrawRect(segs[i].X, segs[i].Y, CellSize, CellSize, color)
	}

	c.DrawText(0, score, th.Text)
}

// screenCanvas maps board pixels onto a region of a core.Screen.
type screenCanvas struct {
	dst   *core.Screen
	board core.Rect
	theme Theme
}

func newScreenCanvas(dst *core.Screen, board core.Rect, th Theme) *screenCanvas {
	return &screenCanvas{dst: dst, board: board, theme: th}
}

// cells converts a pixel rectangle to the screen cells it covers, clipped to
// the board. Positions are always multiples of CellSize.
func (c *screenCanvas) cells(x, y, w, h int) core.Rect {
	r := core.NewRect(
		c.board.X+(x/CellSize)*cellCols,
		c.board.Y+(y/CellSize)*cellRows,
		max(1, w/CellSize)*cellCols,
		max(1, h/CellSize)*cellRows,
	)
	return r.Intersect(c.board)
}

func (c *screenCanvas) fill(r core.Rect, glyph [cellCols]rune, color core.Color) {
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.dst.Set(x, y, glyph[(x-c.board.X)%cellCols], color)
		}
	}
}

func (c *screenCanvas) DrawRect(x, y, w, h int, color core.Color) {
	c.fill(c.cells(x, y, w, h), c.theme.RectGlyph, color)
}

func (c *screenCanvas) DrawOval(x, y, w, h int, color core.Color) {
	c.fill(c.cells(x, y, w, h), c.theme.OvalGlyph, color)
}

func (c *screenCanvas) DrawText(y int, text string, color core.Color) {
	row := c.board.Y + (y/CellSize)*cellRows
	if row < c.board.Y || row >= c.board.Bottom() {
		return
	}
	x := c.board.X + (c.board.W-utf8.RuneCountInString(text))/2
	c.dst.DrawText(x, row, text, color)
}

// boardFrame returns the centered board frame for a screen, or false if the
// screen cannot fit it.
func boardFrame(dst *core.Screen) (core.Rect, bool) {
	if dst.Width() < BoardCols || dst.Height() < BoardRows {
		return core.Rect{}, false
	}
	return core.NewRect(
		(dst.Width()-BoardCols)/2,
		(dst.Height()-BoardRows)/2,
		BoardCols,
		BoardRows,
	), true
}

// renderTooSmall asks the player to enlarge the terminal.
func renderTooSmall(dst *core.Screen, th Theme) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", th.Text)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", BoardCols, BoardRows), th.Text)
}
