package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T, opts ...ConfigOption) *Searcher {
	t.Helper()
	s, err := NewSearcher(WithConfig(NewConfig(opts...)))
	require.NoError(t, err)
	return s
}

func TestCandidates(t *testing.T) {
	s := newTestSearcher(t)

	tests := []struct {
		name   string
		phrase string
		want   []string
	}{
		{
			name:   "empty phrase",
			phrase: "",
			want:   nil,
		},
		{
			name:   "blank phrase",
			phrase: " \n\t ",
			want:   nil,
		},
		{
			name:   "already clean",
			phrase: "the quick brown fox",
			want:   []string{"the quick brown fox"},
		},
		{
			name:   "surrounding whitespace is trimmed",
			phrase: "  the quick brown fox \n",
			want:   []string{"the quick brown fox"},
		},
		{
			name:   "irregular whitespace",
			phrase: "line one\n\tline  two",
			want:   []string{"line one\n\tline  two", "line one line two"},
		},
		{
			name:   "wrap hyphen",
			phrase: "trans- former",
			want:   []string{"trans- former", "transformer", "trans-former"},
		},
		{
			name:   "wrap hyphen across a line break",
			phrase: "trans-\nformer model",
			want:   []string{"trans-\nformer model", "trans- former model", "transformer model", "trans-former model"},
		},
		{
			name:   "consecutive wrap hyphens",
			phrase: "x- y- z",
			want:   []string{"x- y- z", "xyz", "x-y-z"},
		},
		{
			name:   "hyphen after a space is not a wrap hyphen",
			phrase: "well -known",
			want:   []string{"well -known"},
		},
		{
			name:   "compound word is untouched",
			phrase: "state-of-the-art",
			want:   []string{"state-of-the-art"},
		},
		{
			name:   "non-ASCII word characters",
			phrase: "naïve- té",
			want:   []string{"naïve- té", "naïveté", "naïve-té"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Candidates(tt.phrase)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidates_DistinctAndOrdered(t *testing.T) {
	s := newTestSearcher(t)

	got := s.Candidates("  the quick brown\n fox- jumps over ")
	require.NotEmpty(t, got)
	assert.Equal(t, "the quick brown\n fox- jumps over", got[0])

	seen := make(map[string]bool)
	for _, c := range got {
		assert.NotEmpty(t, c)
		assert.False(t, seen[c], "duplicate candidate %q", c)
		seen[c] = true
	}
	assert.Contains(t, got, "the quick brown foxjumps over")
}

func TestNormalizeSpaces(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\nmixed",
		"already normalized text",
		" non-breaking space",
	}

	for _, in := range inputs {
		once := NormalizeSpaces(in)
		assert.Equal(t, once, NormalizeSpaces(once), "not idempotent for %q", in)
		assert.NotContains(t, once, "  ")
	}

	assert.Equal(t, "tabs and newlines mixed", NormalizeSpaces("tabs\tand\nnewlines\r\nmixed"))
}

func TestNormalizeKeyText(t *testing.T) {
	s := newTestSearcher(t)

	assert.Equal(t, "transformer model", s.NormalizeKeyText("  trans-\n  former   model "))
	assert.Equal(t, "state-of-the-art", s.NormalizeKeyText("state-of-the-art"))
	assert.Equal(t, s.NormalizeKeyText("net rev- enue"), s.NormalizeKeyText("net  revenue"))
}
