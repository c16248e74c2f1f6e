package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"deedles.dev/xfov/geom"
)

var (
	// ErrEmpty is returned when parsing a map with no cells.
	ErrEmpty = errors.New("empty map")

	// ErrRagged is returned when parsing a map whose rows are not all
	// the same length.
	ErrRagged = errors.New("ragged rows")
)

// Parse reads a text map with one row of cells per line. Blank lines
// before the first and after the last row are ignored. The top-left
// cell of the returned grid is at (0, 0).
func Parse(text string) (*Grid[rune], error) {
	rows := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmpty
	}

	g := New(geom.Rt(0, 0, width, len(rows)), rune(0))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("row %v has %v cells, expected %v: %w", y, n, width, ErrRagged)
		}

		x := 0
		for _, c := range row {
			g.Set(geom.Pt(x, y), c)
			x++
		}
	}

	return g, nil
}

// Format is the inverse of Parse. Rows are separated, but not
// terminated, by newlines.
func Format(g *Grid[rune]) string {
	var buf strings.Builder
	buf.Grow(len(g.Cells) + g.Rect.Dy())

	for p, c := range g.All() {
		if (p.X == g.Rect.Min.X) && (p.Y != g.Rect.Min.Y) {
			buf.WriteByte('\n')
		}
		buf.WriteRune(c)
	}

	return buf.String()
}
