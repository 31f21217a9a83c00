package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/marginalia/core"
)

// Page is the text-search capability the Searcher needs from a document page.
type Page interface {
	// Search returns the quads of every occurrence of text on the page.
	Search(text string, flags core.SearchFlags) ([]core.Quad, error)
	// Text returns the page's extracted text in reading order.
	Text() (string, error)
}

// Searcher locates phrases on pages.
// It holds no per-call state and is safe for concurrent use.
type Searcher struct {
	cfg    *compiledConfig
	stages []stage
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig replaces the default thresholds and patterns.
// The config is validated and copied.
func WithConfig(cfg *Config) Option {
	return func(s *Searcher) error {
		if cfg == nil {
			return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
		}
		compiled, err := cfg.compile()
		if err != nil {
			return err
		}
		s.cfg = compiled
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	cfg, err := DefaultConfig().compile()
	if err != nil {
		return nil, err
	}
	s := &Searcher{
		cfg:    cfg,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.stages = []stage{
		{StageCandidates, s.searchCandidates},
		{StageSegments, s.searchSegments},
		{StageNoSegments, s.requireSegments},
		{StageFuzzy, s.searchFuzzy},
	}
	return s, nil
}

// Config returns a copy of the searcher's configuration.
func (s *Searcher) Config() Config {
	return s.cfg.Config
}

// lookup carries the state of one FindQuads call between stages.
type lookup struct {
	page       Page
	phrase     string
	candidates []string
	segments   []string
	monitor    MatchMonitor
}

// stage is one step of the cascade. A stage that returns done ends the
// lookup with its quads, which may be empty.
type stage struct {
	name Stage
	run  func(ctx context.Context, l *lookup) (quads []core.Quad, done bool, err error)
}

// FindQuads returns the quads covering phrase on page.
// A phrase that cannot be located yields an empty result and a nil error.
func (s *Searcher) FindQuads(ctx context.Context, page Page, phrase string) ([]core.Quad, error) {
	return s.FindQuadsWithMonitor(ctx, page, phrase, nil)
}

// FindQuadsWithMonitor is FindQuads with a monitor that is told about each
// stage of the cascade.
func (s *Searcher) FindQuadsWithMonitor(ctx context.Context, page Page, phrase string, monitor MatchMonitor) ([]core.Quad, error) {
	if page == nil {
		return nil, ErrPageRequired
	}
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(phrase)
	l := &lookup{
		page:       page,
		phrase:     phrase,
		candidates: s.Candidates(phrase),
		monitor:    monitor,
	}
	monitor.AfterCandidates(l.candidates)
	if len(l.candidates) == 0 {
		monitor.Finish(StageCandidates, nil)
		return nil, nil
	}

	for _, st := range s.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		quads, done, err := st.run(ctx, l)
		if err != nil {
			return nil, err
		}
		if done {
			s.logger.Debug("phrase lookup finished", "stage", st.name, "quads", len(quads))
			monitor.Finish(st.name, quads)
			return quads, nil
		}
	}
	return nil, nil
}

func (s *Searcher) searchCandidates(ctx context.Context, l *lookup) ([]core.Quad, bool, error) {
	for _, candidate := range l.candidates {
		quads, err := s.exactSearch(l.page, candidate)
		if err != nil {
			return nil, false, err
		}
		l.monitor.CandidateSearched(candidate, len(quads))
		if len(quads) > 0 {
			return quads, true, nil
		}
	}
	return nil, false, nil
}

func (s *Searcher) searchSegments(ctx context.Context, l *lookup) ([]core.Quad, bool, error) {
	l.segments = s.Segments(l.candidates...)
	l.monitor.AfterSegments(l.segments)

	var quads []core.Quad
	for _, seg := range l.segments {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		hits, err := s.exactSearch(l.page, seg)
		if err != nil {
			return nil, false, err
		}
		l.monitor.SegmentSearched(seg, len(hits))
		quads = append(quads, hits...)
	}
	return quads, len(quads) > 0, nil
}

func (s *Searcher) requireSegments(_ context.Context, l *lookup) ([]core.Quad, bool, error) {
	return nil, len(l.segments) == 0, nil
}

func (s *Searcher) searchFuzzy(_ context.Context, l *lookup) ([]core.Quad, bool, error) {
	pageText, err := l.page.Text()
	if err != nil {
		return nil, false, fmt.Errorf("page text: %w", err)
	}

	target := longest(l.segments)
	span, ratio, ok := s.FuzzySpan(pageText, target)
	l.monitor.FuzzyAligned(target, span, ratio, ok)
	if !ok {
		s.logger.Debug("no confident fuzzy alignment", "target", target, "ratio", ratio)
		return nil, true, nil
	}

	quads, err := s.exactSearch(l.page, span)
	if err != nil {
		return nil, false, err
	}
	return quads, true, nil
}

// exactSearch searches for text in dehyphenate mode, and if that finds
// nothing, again with spaces removed from both the text and the page.
func (s *Searcher) exactSearch(page Page, text string) ([]core.Quad, error) {
	quads, err := page.Search(text, core.SearchDehyphenate)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", text, err)
	}
	if len(quads) > 0 || !strings.Contains(text, " ") {
		return quads, nil
	}

	tight := strings.ReplaceAll(text, " ", "")
	quads, err = page.Search(tight, core.SearchDehyphenate|core.SearchInhibitSpaces)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", tight, err)
	}
	return quads, nil
}
