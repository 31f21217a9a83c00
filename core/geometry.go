package core

import "math"

// quadKeyDecimals is the rounding applied to quad keys.
const quadKeyDecimals = 2

// Point is a position in page space. The origin is the top-left corner of
// the page and y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle with (X0, Y0) top-left and (X1, Y1) bottom-right.
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Quad is the four corners of a matched text region.
type Quad struct {
	UL Point
	UR Point
	LL Point
	LR Point
}

// QuadFromRect returns the quad covering r.
func QuadFromRect(r Rect) Quad {
	return Quad{
		UL: Point{X: r.X0, Y: r.Y0},
		UR: Point{X: r.X1, Y: r.Y0},
		LL: Point{X: r.X0, Y: r.Y1},
		LR: Point{X: r.X1, Y: r.Y1},
	}
}

// Rect returns the bounding rectangle of the quad.
func (q Quad) Rect() Rect {
	xs := [4]float64{q.UL.X, q.UR.X, q.LL.X, q.LR.X}
	ys := [4]float64{q.UL.Y, q.UR.Y, q.LL.Y, q.LR.Y}
	r := Rect{X0: xs[0], Y0: ys[0], X1: xs[0], Y1: ys[0]}
	for i := 1; i < 4; i++ {
		r.X0 = math.Min(r.X0, xs[i])
		r.X1 = math.Max(r.X1, xs[i])
		r.Y0 = math.Min(r.Y0, ys[i])
		r.Y1 = math.Max(r.Y1, ys[i])
	}
	return r
}

// QuadKey identifies a quad for duplicate detection. It is the bounding box
// rounded to two decimals, so quads that differ only by float noise compare equal.
type QuadKey struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// Key returns the duplicate-detection key of the quad.
func (q Quad) Key() QuadKey {
	r := q.Rect()
	return QuadKey{
		X0: roundTo(r.X0, quadKeyDecimals),
		Y0: roundTo(r.Y0, quadKeyDecimals),
		X1: roundTo(r.X1, quadKeyDecimals),
		Y1: roundTo(r.Y1, quadKeyDecimals),
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}

// SearchFlags select the text-extraction and matching modes of a page search.
type SearchFlags uint8

const (
	// SearchDehyphenate joins a line ending in a hyphen with the following line,
	// dropping the hyphen.
	SearchDehyphenate SearchFlags = 1 << iota
	// SearchInhibitSpaces stops the extractor from inserting spaces for gaps
	// between glyphs, so adjacent characters are treated as touching.
	SearchInhibitSpaces
)

// Has reports whether all bits of f are set.
func (s SearchFlags) Has(f SearchFlags) bool {
	return s&f == f
}
