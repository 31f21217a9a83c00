package pdftext

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/search"
)

// letter is the page box assumed when a page has no MediaBox.
var letter = core.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}

// maxTreeDepth bounds the walk up the page tree for inherited attributes.
const maxTreeDepth = 32

// Document is an open PDF.
type Document struct {
	reader *pdf.Reader
	closer io.Closer

	// The reader resolves objects lazily and is not safe for concurrent use.
	mu sync.Mutex
}

// Open opens the PDF at path. Close releases the file.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{reader: r, closer: f}, nil
}

// NewDocument reads a PDF of the given size from r.
func NewDocument(r io.ReaderAt, size int64) (*Document, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return &Document{reader: reader}, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reader.NumPage()
}

// Page builds the text layer of page n (1-based).
func (d *Document) Page(n int) (page *Page, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n < 1 || n > d.reader.NumPage() {
		return nil, fmt.Errorf("%w: %d", ErrPageOutOfRange, n)
	}

	// The content parser panics on malformed operators.
	defer func() {
		if r := recover(); r != nil {
			page, err = nil, fmt.Errorf("%w: page %d: %v", ErrMalformedPage, n, r)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return nil, fmt.Errorf("%w: page %d has no dictionary", ErrMalformedPage, n)
	}

	box := mediaBox(p.V)
	content := p.Content()
	glyphs := make([]Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, Glyph{
			X:    t.X - box.X0,
			Y:    t.Y - box.Y0,
			W:    t.W,
			Size: t.FontSize,
			S:    t.S,
		})
	}

	page = NewLayer(box.Y1-box.Y0, glyphs)
	page.number = n
	return page, nil
}

// SearchPage returns page n as a search.Page.
func (d *Document) SearchPage(n int) (search.Page, error) {
	page, err := d.Page(n)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Close releases the underlying file, if any.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// mediaBox returns the page's MediaBox, inherited from the page tree if
// needed, normalized so that X0 < X1 and Y0 < Y1.
func mediaBox(v pdf.Value) core.Rect {
	for i := 0; i < maxTreeDepth && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if box.Len() == 4 {
			x0, y0 := box.Index(0).Float64(), box.Index(1).Float64()
			x1, y1 := box.Index(2).Float64(), box.Index(3).Float64()
			r := core.Rect{
				X0: math.Min(x0, x1),
				Y0: math.Min(y0, y1),
				X1: math.Max(x0, x1),
				Y1: math.Max(y0, y1),
			}
			if !r.IsEmpty() {
				return r
			}
		}
		v = v.Key("Parent")
	}
	return letter
}

// DocumentID identifies a PDF by the BLAKE2b hash of its bytes.
func DocumentID(path string) (core.ID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return core.IDFromContent(string(data)), nil
}
