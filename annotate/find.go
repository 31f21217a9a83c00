package annotate

import (
	"context"
	"fmt"
	"sync"

	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/search"
)

// pageCache opens each page of a document at most once.
type pageCache struct {
	doc Document

	mu      sync.Mutex
	entries map[int]*pageEntry
}

type pageEntry struct {
	once sync.Once
	page search.Page
	err  error
}

func newPageCache(doc Document) *pageCache {
	return &pageCache{
		doc:     doc,
		entries: make(map[int]*pageEntry),
	}
}

func (c *pageCache) get(n int) (search.Page, error) {
	c.mu.Lock()
	e, ok := c.entries[n]
	if !ok {
		e = &pageEntry{}
		c.entries[n] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.page, e.err = c.doc.SearchPage(n)
	})
	return e.page, e.err
}

// find looks up every (task, page) pair on the worker pool and stores the
// hits on the tasks. The first error cancels the remaining lookups.
func (p *Pipeline) find(ctx context.Context, pages *pageCache, tasks []*task) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for _, t := range tasks {
		t.hits = make([][]core.Quad, len(t.pages))
		for i, n := range t.pages {
			wg.Add(1)
			err := p.pool.Submit(func() {
				defer wg.Done()
				if ctx.Err() != nil {
					return
				}
				page, err := pages.get(n)
				if err != nil {
					fail(fmt.Errorf("open page %d: %w", n, err))
					return
				}
				quads, err := p.searcher.FindQuads(ctx, page, t.needle)
				if err != nil {
					fail(fmt.Errorf("instruction %d, page %d: %w", t.index, n, err))
					return
				}
				t.hits[i] = quads
			})
			if err != nil {
				wg.Done()
				fail(err)
			}
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	// Cancellation by the caller leaves lookups unfinished
	return ctx.Err()
}
