// Package pdftext turns the glyphs of a PDF page into a searchable text layer.
//
// A Document wraps github.com/ledongthuc/pdf and builds one Page per PDF page.
// Each Page groups glyphs into lines, folds ligatures with NFKC and inserts a
// synthetic space wherever the gap between two glyphs is wider than a fraction
// of the font size. Page implements search.Page: Search maps a literal,
// case-insensitive text onto one quad per line it touches, in page space with
// the origin at the top-left corner.
//
//	doc, err := pdftext.Open("report.pdf")
//	if err != nil {
//	    return err
//	}
//	defer doc.Close()
//
//	page, err := doc.Page(3)
//	quads, err := page.Search("net revenue", core.SearchDehyphenate)
package pdftext
