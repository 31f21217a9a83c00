package mock

import (
	"strings"
	"sync"

	"github.com/poiesic/marginalia/core"
)

// LineHeight is the height of every quad returned by the default Search.
const LineHeight = 10

// Call records one invocation of Search.
type Call struct {
	Text  string
	Flags core.SearchFlags
}

// Page is a test double for search.Page.
type Page struct {
	// Contents is the page text returned by Text and searched by Search.
	Contents string

	// SearchFunc is called by Search if set.
	SearchFunc func(text string, flags core.SearchFlags) ([]core.Quad, error)

	// TextFunc is called by Text if set.
	TextFunc func() (string, error)

	mu        sync.Mutex
	calls     []Call
	textCalls int
}

// NewPage creates a page double over contents.
func NewPage(contents string) *Page {
	return &Page{Contents: contents}
}

// Search finds every non-overlapping, case-insensitive occurrence of text.
// With SearchInhibitSpaces the page's spaces are ignored; with
// SearchDehyphenate a hyphen at the end of a line joins the next line.
func (p *Page) Search(text string, flags core.SearchFlags) ([]core.Quad, error) {
	p.mu.Lock()
	p.calls = append(p.calls, Call{Text: text, Flags: flags})
	p.mu.Unlock()

	if p.SearchFunc != nil {
		return p.SearchFunc(text, flags)
	}
	return QuadsFor(p.view(flags), text), nil
}

// Text returns Contents.
func (p *Page) Text() (string, error) {
	p.mu.Lock()
	p.textCalls++
	p.mu.Unlock()

	if p.TextFunc != nil {
		return p.TextFunc()
	}
	return p.Contents, nil
}

// Calls returns the Search invocations so far.
func (p *Page) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// SearchedTexts returns the text of each Search invocation so far.
func (p *Page) SearchedTexts() []string {
	calls := p.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Text
	}
	return out
}

// TextCalls returns how many times Text was called.
func (p *Page) TextCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.textCalls
}

func (p *Page) view(flags core.SearchFlags) string {
	s := p.Contents
	if flags.Has(core.SearchDehyphenate) {
		s = strings.ReplaceAll(s, "-\n", "")
	}
	if flags.Has(core.SearchInhibitSpaces) {
		s = strings.ReplaceAll(s, " ", "")
	}
	return s
}

// QuadsFor returns the quads the default Search reports for text in contents.
func QuadsFor(contents, text string) []core.Quad {
	if text == "" {
		return nil
	}
	hay := strings.ToLower(contents)
	needle := strings.ToLower(text)

	var quads []core.Quad
	offset := 0
	for {
		i := strings.Index(hay[offset:], needle)
		if i < 0 {
			return quads
		}
		start := offset + i
		quads = append(quads, core.QuadFromRect(core.Rect{
			X0: float64(start),
			Y0: 0,
			X1: float64(start + len(needle)),
			Y1: LineHeight,
		}))
		offset = start + len(needle)
	}
}
