package mapio

import (
	"errors"
	"strings"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
)

var (
	// ErrEmptyMap indicates the input has no content lines at all.
	ErrEmptyMap = errors.New("mapio: map has no content lines")
	// ErrNonRectangular indicates content lines of differing widths.
	ErrNonRectangular = errors.New("mapio: all content lines must have the same width")
)

// contentRunes are the characters that mark the start of map content; a
// leading run of anything else (blank lines, comments) is skipped.
const contentRunes = ".@T"

// Load parses text into a belief grid: the leading run of whitespace/
// comment lines is skipped to the first line containing '.', '@', or 'T';
// width is that first content line's length, height is the remaining
// content line count. Every '.' marks a passable cell (and its hidden
// ground truth); every other character marks an obstacle.
func Load(text string) (*belief.Grid, error) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if strings.ContainsAny(line, contentRunes) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, ErrEmptyMap
	}

	var content []string
	for _, line := range lines[start:] {
		if line == "" {
			continue
		}
		content = append(content, line)
	}
	if len(content) == 0 {
		return nil, ErrEmptyMap
	}

	width := len([]rune(content[0]))
	height := len(content)
	for _, line := range content {
		if len([]rune(line)) != width {
			return nil, ErrNonRectangular
		}
	}

	g, err := belief.New(width, height)
	if err != nil {
		return nil, err
	}
	for y, line := range content {
		for x, r := range []rune(line) {
			if r == '.' {
				if err := g.SetValue(gridcoord.Cell{X: x, Y: y}, true); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// Render prints g row-major, top to bottom: '.' for a believed-passable
// cell, '@' for blocked, '*' for a cell on path (overriding either), each
// row terminated by '\n'. path may be nil for an unannotated render.
func Render(g *belief.Grid, path []gridcoord.Cell) string {
	onPath := make(map[gridcoord.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := gridcoord.Cell{X: x, Y: y}
			switch {
			case onPath[c]:
				b.WriteByte('*')
			case g.GetValue(c):
				b.WriteByte('.')
			default:
				b.WriteByte('@')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
