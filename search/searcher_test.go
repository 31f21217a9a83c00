package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/search/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMonitor captures the callbacks of one lookup.
type recordingMonitor struct {
	phrase     string
	candidates []string
	segments   []string
	searched   []string
	fuzzyOK    bool
	fuzzySpan  string
	ratio      float64
	stage      Stage
	finished   bool
}

func (m *recordingMonitor) Start(phrase string) { m.phrase = phrase }
func (m *recordingMonitor) AfterCandidates(c []string) {
	m.candidates = c
}
func (m *recordingMonitor) CandidateSearched(c string, _ int) {
	m.searched = append(m.searched, c)
}
func (m *recordingMonitor) AfterSegments(s []string) { m.segments = s }
func (m *recordingMonitor) SegmentSearched(s string, _ int) {
	m.searched = append(m.searched, s)
}
func (m *recordingMonitor) FuzzyAligned(_, span string, ratio float64, ok bool) {
	m.fuzzySpan, m.ratio, m.fuzzyOK = span, ratio, ok
}
func (m *recordingMonitor) Finish(stage Stage, _ []core.Quad) {
	m.stage, m.finished = stage, true
}

func TestFindQuads_Verbatim(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("The quick brown fox jumps over the lazy dog.")
	phrase := "the quick brown fox jumps over"

	monitor := &recordingMonitor{}
	quads, err := s.FindQuadsWithMonitor(context.Background(), page, phrase, monitor)
	require.NoError(t, err)

	assert.Len(t, quads, 1)
	assert.Equal(t, mock.QuadsFor(page.Contents, phrase), quads)
	assert.Equal(t, []mock.Call{{Text: phrase, Flags: core.SearchDehyphenate}}, page.Calls())
	assert.Equal(t, StageCandidates, monitor.stage)
	assert.Zero(t, page.TextCalls())
}

func TestFindQuads_Dehyphenated(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("the quick brown foxjumps over")
	phrase := "the quick brown\n fox- jumps over"

	quads, err := s.FindQuads(context.Background(), page, phrase)
	require.NoError(t, err)
	assert.Equal(t, mock.QuadsFor(page.Contents, "the quick brown foxjumps over"), quads)

	raw := "the quick brown\n fox- jumps over"
	normalized := "the quick brown fox- jumps over"
	assert.Equal(t, []string{
		raw,
		strings.ReplaceAll(raw, " ", ""),
		normalized,
		strings.ReplaceAll(normalized, " ", ""),
		"the quick brown foxjumps over",
	}, page.SearchedTexts())
}

func TestFindQuads_TightFallback(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("Netrevenueincreased by 4%")

	quads, err := s.FindQuads(context.Background(), page, "Net revenue increased")
	require.NoError(t, err)
	assert.Len(t, quads, 1)
	assert.Equal(t, []mock.Call{
		{Text: "Net revenue increased", Flags: core.SearchDehyphenate},
		{Text: "Netrevenueincreased", Flags: core.SearchDehyphenate | core.SearchInhibitSpaces},
	}, page.Calls())
}

func TestFindQuads_NoTightFallbackWithoutSpaces(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("nothing relevant here")

	quads, err := s.FindQuads(context.Background(), page, "transformer")
	require.NoError(t, err)
	assert.Empty(t, quads)
	assert.Equal(t, []mock.Call{{Text: "transformer", Flags: core.SearchDehyphenate}}, page.Calls())
	assert.Zero(t, page.TextCalls())
}

func TestFindQuads_SegmentsConcatenated(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("Revenue grew strongly in the third quarter\n" +
		"while other lines were unchanged\n" +
		"Costs remained flat across all divisions")
	phrase := "Revenue grew strongly in the third quarter. Costs remained flat across all divisions."

	monitor := &recordingMonitor{}
	quads, err := s.FindQuadsWithMonitor(context.Background(), page, phrase, monitor)
	require.NoError(t, err)

	first := "Revenue grew strongly in the third quarter"
	second := "Costs remained flat across all divisions"
	want := append(mock.QuadsFor(page.Contents, first), mock.QuadsFor(page.Contents, second)...)
	assert.Len(t, quads, 2)
	assert.Equal(t, want, quads)
	assert.Equal(t, []string{first, second}, monitor.segments)
	assert.Equal(t, StageSegments, monitor.stage)
}

func TestFindQuads_SegmentsKeepSearchingAfterHit(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("alpha bravo charlie and later golf hotel india")
	phrase := "alpha bravo charlie; delta echo foxtrot; golf hotel india"

	quads, err := s.FindQuads(context.Background(), page, phrase)
	require.NoError(t, err)
	assert.Len(t, quads, 2)

	searched := page.SearchedTexts()
	assert.Contains(t, searched, "delta echo foxtrot")
	assert.Contains(t, searched, "golf hotel india")
}

func TestFindQuads_ShortSegmentsNeverSearched(t *testing.T) {
	s := newTestSearcher(t)
	// "zz top" is on the page but has only five alphanumerics.
	page := mock.NewPage("music by zz top")

	monitor := &recordingMonitor{}
	quads, err := s.FindQuadsWithMonitor(context.Background(), page, "xy. zz top", monitor)
	require.NoError(t, err)

	assert.Empty(t, quads)
	assert.Empty(t, monitor.segments)
	assert.NotContains(t, page.SearchedTexts(), "zz top")
	assert.Equal(t, StageNoSegments, monitor.stage)
	assert.Zero(t, page.TextCalls())
}

func TestFindQuads_TooShortPhrase(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("the quick brown fox jumps over the lazy dog")

	quads, err := s.FindQuads(context.Background(), page, "xy")
	require.NoError(t, err)
	assert.Empty(t, quads)
	assert.Equal(t, []string{"xy"}, page.SearchedTexts())
	assert.Zero(t, page.TextCalls())
}

func TestFindQuads_EmptyPhrase(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("anything")

	quads, err := s.FindQuads(context.Background(), page, "")
	require.NoError(t, err)
	assert.Empty(t, quads)
	assert.Empty(t, page.Calls())
}

func TestFindQuads_FuzzyReorderedWords(t *testing.T) {
	s := newTestSearcher(t)

	words := make([]string, 40)
	for i := range words {
		words[i] = "w" + string(rune('0'+i/10)) + string(rune('0'+i%10))
	}
	phrase := strings.Join(words, " ")

	// Swap a pair of neighbours inside every window the segmenter produces.
	rendered := append([]string(nil), words...)
	for _, i := range []int{3, 9, 15, 21, 27, 33} {
		rendered[i], rendered[i+1] = rendered[i+1], rendered[i]
	}
	page := mock.NewPage(strings.Join(rendered, " "))

	monitor := &recordingMonitor{}
	quads, err := s.FindQuadsWithMonitor(context.Background(), page, phrase, monitor)
	require.NoError(t, err)

	span := "w00 w01 w02 w04 w03 w05 w06 w07"
	assert.Equal(t, StageFuzzy, monitor.stage)
	assert.True(t, monitor.fuzzyOK)
	assert.GreaterOrEqual(t, monitor.ratio, 0.75)
	assert.Equal(t, span, monitor.fuzzySpan)
	assert.Len(t, quads, 1)
	assert.Equal(t, mock.QuadsFor(page.Contents, span), quads)
	assert.Equal(t, 1, page.TextCalls())
}

func TestFindQuads_FuzzyBelowThreshold(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("lorem ipsum dolor sit amet consectetur adipiscing elit sed do")

	monitor := &recordingMonitor{}
	quads, err := s.FindQuadsWithMonitor(context.Background(), page,
		"alpha bravo charlie delta echo foxtrot", monitor)
	require.NoError(t, err)

	assert.Empty(t, quads)
	assert.False(t, monitor.fuzzyOK)
	assert.Equal(t, StageFuzzy, monitor.stage)
}

func TestFindQuads_Errors(t *testing.T) {
	s := newTestSearcher(t)
	errBoom := errors.New("boom")

	t.Run("nil page", func(t *testing.T) {
		_, err := s.FindQuads(context.Background(), nil, "anything")
		assert.ErrorIs(t, err, ErrPageRequired)
	})

	t.Run("search failure propagates", func(t *testing.T) {
		page := mock.NewPage("")
		page.SearchFunc = func(string, core.SearchFlags) ([]core.Quad, error) {
			return nil, errBoom
		}
		_, err := s.FindQuads(context.Background(), page, "net revenue")
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("text failure propagates", func(t *testing.T) {
		page := mock.NewPage("")
		page.TextFunc = func() (string, error) {
			return "", errBoom
		}
		_, err := s.FindQuads(context.Background(), page, "alpha bravo charlie delta echo foxtrot")
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		page := mock.NewPage("the quick brown fox")
		_, err := s.FindQuads(ctx, page, "the quick brown fox")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, page.Calls())
	})
}

func TestFindQuads_Concurrent(t *testing.T) {
	s := newTestSearcher(t)
	page := mock.NewPage("The quick brown fox jumps over the lazy dog.")

	var wg sync.WaitGroup
	results := make([][]core.Quad, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quads, err := s.FindQuads(context.Background(), page, "lazy dog")
			assert.NoError(t, err)
			results[i] = quads
		}(i)
	}
	wg.Wait()

	for _, quads := range results {
		assert.Equal(t, results[0], quads)
		assert.Len(t, quads, 1)
	}
}
