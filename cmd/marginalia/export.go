package main

import (
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/poiesic/marginalia/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type exportedRect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

type exportedAnnotation struct {
	ID        uint64         `json:"id"`
	Page      int            `json:"page"`
	Action    string         `json:"action"`
	Kind      string         `json:"kind"`
	Text      string         `json:"text"`
	Comment   string         `json:"comment"`
	Subject   string         `json:"subject,omitempty"`
	Author    string         `json:"author"`
	Color     []float64      `json:"color,omitempty"`
	Quads     []exportedRect `json:"quads"`
	Popup     *exportedRect  `json:"popup,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toRect(r core.Rect) exportedRect {
	return exportedRect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

// writeAnnotations writes annotations as an indented JSON array, quads
// reduced to their bounding rectangles.
func writeAnnotations(w io.Writer, annotations []*core.Annotation) error {
	out := make([]exportedAnnotation, 0, len(annotations))
	for _, a := range annotations {
		e := exportedAnnotation{
			ID:        uint64(a.Id),
			Page:      a.Page,
			Action:    a.Action.String(),
			Kind:      a.Kind.String(),
			Text:      a.Text,
			Comment:   a.Comment,
			Subject:   a.Subject,
			Author:    a.Author,
			CreatedAt: a.InsertedAt.UTC(),
		}
		if a.Action == core.ActionHighlight {
			e.Color = []float64{a.Color.R, a.Color.G, a.Color.B}
		}
		for _, q := range a.Quads {
			e.Quads = append(e.Quads, toRect(q.Rect()))
		}
		if a.OpenPopup {
			popup := toRect(a.PopupRect)
			e.Popup = &popup
		}
		out = append(out, e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
