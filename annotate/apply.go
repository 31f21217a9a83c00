package annotate

import (
	"context"

	"github.com/poiesic/marginalia/core"
)

// Popup placement relative to the union rectangle of an annotation.
const (
	popupOffset = 10
	popupWidth  = 250
	popupHeight = 120
)

// quadSet holds the quad keys already covered, per page and metadata.
type quadSet map[int]map[core.InfoKey]map[core.QuadKey]struct{}

// apply walks tasks in instruction order, drops quads already covered by an
// annotation with the same metadata and returns the annotations to store.
// It fills in the Matched, Added and Duplicates counts of stats.
func (p *Pipeline) apply(ctx context.Context, docID core.ID, tasks []*task, stats *core.RunStats) ([]*core.Annotation, error) {
	covered := make(quadSet)
	var out []*core.Annotation

	for _, t := range tasks {
		matched, added := false, false

		for i, page := range t.pages {
			quads := t.hits[i]
			if len(quads) == 0 {
				continue
			}
			matched = true

			existing, err := p.coveredOn(ctx, covered, docID, page)
			if err != nil {
				return nil, err
			}
			keys := existing[t.infoKey()]
			if keys == nil {
				keys = make(map[core.QuadKey]struct{})
				existing[t.infoKey()] = keys
			}

			var fresh []core.Quad
			for _, q := range quads {
				k := q.Key()
				if _, ok := keys[k]; ok {
					continue
				}
				keys[k] = struct{}{}
				fresh = append(fresh, q)
			}
			if len(fresh) == 0 {
				continue
			}

			out = append(out, p.newAnnotation(docID, page, t, fresh))
			added = true
		}

		if !matched {
			continue
		}
		stats.Matched++
		if added {
			stats.Added++
		} else {
			stats.Duplicates++
		}
	}
	return out, nil
}

// coveredOn returns the covered quad keys of a page, loading the page's
// stored annotations on first use.
func (p *Pipeline) coveredOn(ctx context.Context, covered quadSet, docID core.ID, page int) (map[core.InfoKey]map[core.QuadKey]struct{}, error) {
	if existing, ok := covered[page]; ok {
		return existing, nil
	}

	stored, err := p.annotations.GetAnnotationsByPage(ctx, docID, page)
	if err != nil {
		return nil, err
	}
	existing := make(map[core.InfoKey]map[core.QuadKey]struct{})
	for _, a := range stored {
		keys := existing[a.InfoKey()]
		if keys == nil {
			keys = make(map[core.QuadKey]struct{})
			existing[a.InfoKey()] = keys
		}
		for _, q := range a.Quads {
			keys[q.Key()] = struct{}{}
		}
	}
	covered[page] = existing
	return existing, nil
}

func (p *Pipeline) newAnnotation(docID core.ID, page int, t *task, quads []core.Quad) *core.Annotation {
	a := &core.Annotation{
		Document: docID,
		Page:     page,
		Action:   t.action,
		Kind:     t.kind,
		Text:     t.needle,
		Comment:  t.comment,
		Subject:  t.subject,
		Author:   t.author,
		Quads:    quads,
	}
	// Underlines keep the viewer's default colour
	if t.action == core.ActionHighlight {
		a.Color = t.kind.Color()
	}
	if p.openPopup {
		r := a.Bounds()
		a.OpenPopup = true
		a.PopupRect = core.Rect{
			X0: r.X1 + popupOffset,
			Y0: r.Y0,
			X1: r.X1 + popupOffset + popupWidth,
			Y1: r.Y0 + popupHeight,
		}
	}
	return a
}
