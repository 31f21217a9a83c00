package pdftext

import (
	"strings"
	"unicode"

	"github.com/poiesic/marginalia/core"
	"golang.org/x/text/unicode/norm"
)

// atom is one unit of a search stream: a lower-cased rune or a whitespace run.
type atom struct {
	r    rune
	ws   bool
	line int // -1 for a line break
	box  core.Rect
}

// Search returns one quad per line touched by each occurrence of text.
// Matching ignores case and treats any whitespace run in text as matching any
// whitespace run on the page, line breaks included. Occurrences do not overlap.
func (p *Page) Search(text string, flags core.SearchFlags) ([]core.Quad, error) {
	needle := foldNeedle(text)
	if len(needle) == 0 {
		return nil, nil
	}
	hay := p.stream(flags)

	var quads []core.Quad
	for i := 0; i+len(needle) <= len(hay); {
		if matchAt(hay[i:], needle) {
			quads = append(quads, lineQuads(hay[i:i+len(needle)])...)
			i += len(needle)
			continue
		}
		i++
	}
	return quads, nil
}

// stream returns the memoized search stream for flags.
func (p *Page) stream(flags core.SearchFlags) []atom {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.streams[flags]; ok {
		return s
	}
	s := p.buildStream(flags)
	p.streams[flags] = s
	return s
}

func (p *Page) buildStream(flags core.SearchFlags) []atom {
	var out []atom
	for li, line := range p.lines {
		chars := line
		joined := false
		if flags.Has(core.SearchDehyphenate) && li+1 < len(p.lines) &&
			endsWithWrapHyphen(line) && isWordRune(p.lines[li+1][0].r) {
			chars = line[:len(line)-1]
			joined = true
		}

		for _, c := range chars {
			if c.synthetic && flags.Has(core.SearchInhibitSpaces) {
				continue
			}
			if c.r == ' ' {
				out = appendSpace(out, atom{ws: true, line: li, box: c.box})
				continue
			}
			out = append(out, atom{r: unicode.ToLower(c.r), line: li, box: c.box})
		}

		if li+1 < len(p.lines) && !joined {
			out = appendSpace(out, atom{ws: true, line: -1})
		}
	}
	return out
}

func appendSpace(out []atom, a atom) []atom {
	if n := len(out); n > 0 && out[n-1].ws {
		return out
	}
	return append(out, a)
}

// foldNeedle converts text into the atoms it must match, with surrounding
// whitespace dropped.
func foldNeedle(text string) []atom {
	text = strings.TrimSpace(norm.NFKC.String(text))
	var out []atom
	for _, r := range text {
		if unicode.IsSpace(r) {
			out = appendSpace(out, atom{ws: true})
			continue
		}
		out = append(out, atom{r: unicode.ToLower(r)})
	}
	return out
}

func matchAt(hay, needle []atom) bool {
	for j := range needle {
		h, n := hay[j], needle[j]
		if h.ws != n.ws || (!n.ws && h.r != n.r) {
			return false
		}
	}
	return true
}

// lineQuads returns the union of the boxes of a hit on each line it touches,
// in reading order.
func lineQuads(hit []atom) []core.Quad {
	var (
		quads []core.Quad
		line  = -1
		rect  core.Rect
	)
	for _, a := range hit {
		if a.line < 0 {
			continue
		}
		if a.line != line {
			if line >= 0 {
				quads = append(quads, core.QuadFromRect(rect))
			}
			line, rect = a.line, a.box
			continue
		}
		rect = rect.Union(a.box)
	}
	if line >= 0 {
		quads = append(quads, core.QuadFromRect(rect))
	}
	return quads
}

// endsWithWrapHyphen reports whether a line ends in a hyphen that follows a
// word character.
func endsWithWrapHyphen(line []char) bool {
	n := len(line)
	return n >= 2 && line[n-1].r == '-' && isWordRune(line[n-2].r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
