package pdftext

import "errors"

var (
	// ErrPageOutOfRange is returned for page numbers outside 1..NumPages.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrMalformedPage is returned when a page's content cannot be decoded.
	ErrMalformedPage = errors.New("malformed page")
)
