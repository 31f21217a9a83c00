package pdftext

import (
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/marginalia/core"
	"golang.org/x/text/unicode/norm"
)

const (
	// baselineTolerance is the fraction of the font size two glyphs' baselines
	// may differ by and still share a line.
	baselineTolerance = 0.3
	// spaceGap is the fraction of the font size a horizontal gap must exceed
	// before a synthetic space is inserted.
	spaceGap = 0.15
	// ascent and descent place a glyph's box around its baseline.
	ascent  = 0.8
	descent = 0.2
	// defaultFontSize is used for glyphs that report no size.
	defaultFontSize = 10
)

// Glyph is one run of text as positioned by the PDF content stream.
// Coordinates use the PDF convention: origin at the bottom-left corner of the
// page and Y at the baseline.
type Glyph struct {
	X    float64
	Y    float64
	W    float64
	Size float64
	S    string
}

// char is one rune of the text layer with its box in top-left page space.
type char struct {
	r         rune
	box       core.Rect
	synthetic bool // space inserted for a gap between glyphs
}

// Page is the text layer of one page. It is read-only after construction and
// safe for concurrent use.
type Page struct {
	number int
	height float64
	lines  [][]char

	mu      sync.Mutex
	streams map[core.SearchFlags][]atom
}

// NewLayer builds the text layer of a page of the given height from glyphs in
// content-stream order.
func NewLayer(height float64, glyphs []Glyph) *Page {
	p := &Page{
		height:  height,
		streams: make(map[core.SearchFlags][]atom),
	}

	var (
		current  []char
		baseline float64
		prevEnd  float64
		prevSize float64
	)
	flush := func() {
		current = trimSpaces(current)
		if len(current) > 0 {
			p.lines = append(p.lines, current)
		}
		current = nil
	}

	for _, g := range glyphs {
		text := norm.NFKC.String(g.S)
		if strings.TrimSpace(text) == "" && !strings.Contains(text, " ") {
			continue
		}
		size := g.Size
		if size <= 0 {
			size = defaultFontSize
		}

		if len(current) > 0 {
			tolerance := baselineTolerance * math.Max(size, prevSize)
			newLine := math.Abs(g.Y-baseline) > tolerance || g.X < prevEnd-size
			if newLine {
				flush()
			} else if gap := g.X - prevEnd; gap > spaceGap*size && !endsWithSpace(current) && !strings.HasPrefix(text, " ") {
				current = append(current, char{
					r:         ' ',
					box:       p.box(prevEnd, g.X, baseline, size),
					synthetic: true,
				})
			}
		}
		if len(current) == 0 {
			baseline = g.Y
		}

		current = append(current, p.split(text, g, size)...)
		prevEnd = g.X + g.W
		prevSize = size
	}
	flush()
	return p
}

// split divides a glyph's box evenly between the runes of its text.
func (p *Page) split(text string, g Glyph, size float64) []char {
	n := utf8.RuneCountInString(text)
	step := g.W / float64(n)
	chars := make([]char, 0, n)
	i := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			r = ' '
		}
		x0 := g.X + float64(i)*step
		chars = append(chars, char{r: r, box: p.box(x0, x0+step, g.Y, size)})
		i++
	}
	return chars
}

// box returns the top-left space rectangle spanning x0..x1 around a baseline.
func (p *Page) box(x0, x1, baseline, size float64) core.Rect {
	return core.Rect{
		X0: x0,
		Y0: p.height - (baseline + ascent*size),
		X1: x1,
		Y1: p.height - (baseline - descent*size),
	}
}

// Number returns the 1-based page number, or 0 for a layer built directly.
func (p *Page) Number() int {
	return p.number
}

// Text returns the page text, one line per text line.
func (p *Page) Text() (string, error) {
	var b strings.Builder
	for i, line := range p.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range line {
			b.WriteRune(c.r)
		}
	}
	return b.String(), nil
}

func endsWithSpace(chars []char) bool {
	return len(chars) > 0 && chars[len(chars)-1].r == ' '
}

func trimSpaces(chars []char) []char {
	for len(chars) > 0 && chars[0].r == ' ' {
		chars = chars[1:]
	}
	for len(chars) > 0 && chars[len(chars)-1].r == ' ' {
		chars = chars[:len(chars)-1]
	}
	return chars
}
