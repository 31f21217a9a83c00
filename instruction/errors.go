package instruction

import "errors"

var (
	// ErrMalformed is returned when an instruction file is not a JSON array of
	// instruction objects.
	ErrMalformed = errors.New("malformed instructions")

	// ErrInvalidPage is returned for a page number below 1.
	ErrInvalidPage = errors.New("page must be 1 or greater")
)
