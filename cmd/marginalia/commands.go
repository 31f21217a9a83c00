package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/marginalia"
	"github.com/poiesic/marginalia/annotate"
	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/instruction"
	"github.com/poiesic/marginalia/pdftext"
	"github.com/poiesic/marginalia/prune"
	"github.com/poiesic/marginalia/search"
	"github.com/urfave/cli/v2"
)

var errUnmatched = errors.New("not every instruction was matched")

func annotateCommand(c *cli.Context) error {
	pdfPath := c.String("pdf")
	instructions, err := instruction.Load(c.String("instructions"))
	if err != nil {
		return err
	}

	doc, err := pdftext.Open(pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	docID, err := pdftext.DocumentID(pdfPath)
	if err != nil {
		return err
	}

	db, err := marginalia.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := []annotate.Option{
		annotate.WithDefaultAuthor(c.String("author")),
		annotate.WithOpenPopup(c.Bool("popup")),
	}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, annotate.WithPoolSize(workers))
	}
	pipeline, err := db.NewPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	stats, err := pipeline.Run(c.Context, doc, docID, instructions)
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "matched=%d/%d added=%d duplicates=%d\n",
		stats.Matched, stats.Expected, stats.Added, stats.Duplicates)

	if c.Bool("strict") && stats.Matched != stats.Expected {
		return fmt.Errorf("%w: %d of %d", errUnmatched, stats.Matched, stats.Expected)
	}
	return nil
}

func findCommand(c *cli.Context) error {
	phrase := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(phrase) == "" {
		return fmt.Errorf("a phrase is required")
	}

	doc, err := pdftext.Open(c.String("pdf"))
	if err != nil {
		return err
	}
	defer doc.Close()

	first, last := 1, doc.NumPages()
	if page := c.Int("page"); page != 0 {
		if page < 0 || page > last {
			return fmt.Errorf("%w: page %d of %d", pdftext.ErrPageOutOfRange, page, last)
		}
		first, last = page, page
	}

	searcher, err := search.NewSearcher()
	if err != nil {
		return err
	}

	var monitor search.MatchMonitor
	if c.Bool("explain") {
		monitor = newExplainMonitor(c.App.ErrWriter)
	}

	found := 0
	for n := first; n <= last; n++ {
		page, err := doc.SearchPage(n)
		if err != nil {
			return err
		}
		quads, err := searcher.FindQuadsWithMonitor(c.Context, page, phrase, monitor)
		if err != nil {
			return fmt.Errorf("page %d: %w", n, err)
		}
		for _, q := range quads {
			r := q.Rect()
			fmt.Fprintf(c.App.Writer, "page %d: %.2f %.2f %.2f %.2f\n", n, r.X0, r.Y0, r.X1, r.Y1)
		}
		found += len(quads)
	}
	if found == 0 {
		fmt.Fprintln(c.App.Writer, "no match")
	}
	return nil
}

func clearCommand(c *cli.Context) error {
	config := &prune.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	instructions, err := instruction.Load(c.String("instructions"))
	if err != nil {
		return err
	}
	docID, err := pdftext.DocumentID(c.String("pdf"))
	if err != nil {
		return err
	}

	db, err := marginalia.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pruner, err := db.NewPruner(config, os.Stderr)
	if err != nil {
		return err
	}
	result, err := pruner.Run(c.Context, docID, instruction.ClearKeys(instructions))
	if err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "removed=%d scanned=%d\n", result.Removed, result.Scanned)
	return nil
}

func exportCommand(c *cli.Context) error {
	docID, err := pdftext.DocumentID(c.String("pdf"))
	if err != nil {
		return err
	}

	db, err := marginalia.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	annotations, err := db.AnnotationRepository().GetAnnotationsByDocument(c.Context, docID)
	if err != nil {
		return err
	}

	out := c.App.Writer
	if path := c.String("out"); path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeAnnotations(out, annotations)
}

// explainMonitor prints each stage of a lookup.
type explainMonitor struct {
	w io.Writer
}

var _ search.MatchMonitor = (*explainMonitor)(nil)

func newExplainMonitor(w io.Writer) *explainMonitor {
	if w == nil {
		w = os.Stderr
	}
	return &explainMonitor{w: w}
}

func (m *explainMonitor) Start(phrase string) {
	fmt.Fprintf(m.w, "phrase: %q\n", phrase)
}

func (m *explainMonitor) AfterCandidates(candidates []string) {
	fmt.Fprintf(m.w, "  %d candidates\n", len(candidates))
}

func (m *explainMonitor) CandidateSearched(candidate string, hits int) {
	fmt.Fprintf(m.w, "  candidate %q: %d hits\n", candidate, hits)
}

func (m *explainMonitor) AfterSegments(segments []string) {
	fmt.Fprintf(m.w, "  %d segments\n", len(segments))
}

func (m *explainMonitor) SegmentSearched(segment string, hits int) {
	fmt.Fprintf(m.w, "  segment %q: %d hits\n", segment, hits)
}

func (m *explainMonitor) FuzzyAligned(target, span string, ratio float64, accepted bool) {
	fmt.Fprintf(m.w, "  fuzzy %q -> %q ratio=%.3f accepted=%t\n", target, span, ratio, accepted)
}

func (m *explainMonitor) Finish(stage search.Stage, quads []core.Quad) {
	fmt.Fprintf(m.w, "  finished at %s with %d quads\n", stage, len(quads))
}
