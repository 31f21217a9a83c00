package annotate

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/search"
	"github.com/poiesic/marginalia/storage"
)

// DefaultAuthor is the author recorded when an instruction names none.
const DefaultAuthor = "marginalia"

// Document is the document being annotated.
type Document interface {
	// NumPages returns the number of pages.
	NumPages() int
	// SearchPage opens page n (1-based) for searching.
	SearchPage(n int) (search.Page, error)
}

// Pipeline annotates documents from instructions.
// A Pipeline may run over several documents in turn; Release frees its pool.
type Pipeline struct {
	annotations   storage.AnnotationRepository
	checkpoints   storage.CheckpointRepository
	searcher      *search.Searcher
	searchConfig  *search.Config
	pool          *ants.Pool
	defaultAuthor string
	openPopup     bool
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent phrase lookups.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithDefaultAuthor sets the author recorded for instructions without one.
// Default is DefaultAuthor.
func WithDefaultAuthor(author string) Option {
	return func(p *Pipeline) error {
		p.defaultAuthor = author
		return nil
	}
}

// WithOpenPopup makes new annotations carry an open popup placed to the
// right of the marked text.
func WithOpenPopup(open bool) Option {
	return func(p *Pipeline) error {
		p.openPopup = open
		return nil
	}
}

// WithSearchConfig sets the matching configuration.
// Default is search.DefaultConfig(). The config is validated by NewPipeline.
func WithSearchConfig(cfg *search.Config) Option {
	return func(p *Pipeline) error {
		if cfg == nil {
			return fmt.Errorf("%w: config is nil", search.ErrInvalidConfig)
		}
		p.searchConfig = cfg
		return nil
	}
}

// NewPipeline creates a new annotation pipeline.
func NewPipeline(
	annotations storage.AnnotationRepository,
	checkpoints storage.CheckpointRepository,
	opts ...Option,
) (*Pipeline, error) {
	if annotations == nil {
		return nil, ErrAnnotationRepositoryRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointRepositoryRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		annotations:   annotations,
		checkpoints:   checkpoints,
		pool:          pool,
		defaultAuthor: DefaultAuthor,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// The searcher is built after options so it gets the final logger and config
	searchOpts := []search.Option{search.WithLogger(p.logger)}
	if p.searchConfig != nil {
		searchOpts = append(searchOpts, search.WithConfig(p.searchConfig))
	}
	searcher, err := search.NewSearcher(searchOpts...)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.searcher = searcher

	return p, nil
}

// Run annotates doc, identified by docID, with instructions and saves the
// run's checkpoint. A failing page lookup aborts the run before anything is
// stored.
func (p *Pipeline) Run(ctx context.Context, doc Document, docID core.ID, instructions []core.Instruction) (*core.RunStats, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}
	logger := p.logger.With("document", docID)

	tasks := p.plan(doc.NumPages(), instructions, logger)
	stats := &core.RunStats{Expected: len(tasks)}

	if err := p.find(ctx, newPageCache(doc), tasks); err != nil {
		return nil, err
	}

	added, err := p.apply(ctx, docID, tasks, stats)
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		if _, err := p.annotations.AddAnnotations(ctx, added...); err != nil {
			logger.Error("failed to store annotations", "count", len(added), "err", err)
			return nil, fmt.Errorf("store annotations: %w", err)
		}
	}

	checkpoint := &core.Checkpoint{
		Document:     docID,
		Instructions: len(instructions),
		Matched:      stats.Matched,
		Expected:     stats.Expected,
		Added:        stats.Added,
		Duplicates:   stats.Duplicates,
	}
	if err := p.checkpoints.SaveCheckpoint(ctx, checkpoint); err != nil {
		logger.Error("failed to save checkpoint", "err", err)
		return nil, fmt.Errorf("save checkpoint: %w", err)
	}

	logger.Info("annotation run complete",
		"matched", stats.Matched,
		"expected", stats.Expected,
		"added", stats.Added,
		"duplicates", stats.Duplicates,
		"annotations", len(added))
	return stats, nil
}

// Searcher returns the searcher used for phrase lookups.
func (p *Pipeline) Searcher() *search.Searcher {
	return p.searcher
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
