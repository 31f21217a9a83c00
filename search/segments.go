package search

import "strings"

// Segments splits each candidate into sentence parts and sliding word windows
// and returns the distinct ones, in first-seen order, that are long enough to
// be searched on their own.
func (s *Searcher) Segments(candidates ...string) []string {
	set := newOrderedSet()
	for _, candidate := range candidates {
		for _, seg := range s.splitText(candidate) {
			set.add(seg)
		}
	}

	segments := make([]string, 0, len(set.list()))
	for _, seg := range set.list() {
		if s.isMatchable(seg) {
			segments = append(segments, seg)
		}
	}
	return segments
}

// splitText breaks text into parts on sentence punctuation and windows any
// part longer than WindowWords. The last window always ends on the part's
// final word.
func (s *Searcher) splitText(text string) []string {
	cleaned := NormalizeSpaces(text)
	if cleaned == "" {
		return nil
	}

	var parts []string
	for _, p := range s.cfg.split.Split(cleaned, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		parts = []string{cleaned}
	}

	size, step := s.cfg.WindowWords, s.cfg.WindowStep
	var segments []string
	for _, part := range parts {
		words := strings.Fields(part)
		if len(words) <= size {
			segments = append(segments, part)
			continue
		}
		for i := 0; i+size <= len(words); i += step {
			segments = append(segments, strings.Join(words[i:i+size], " "))
		}
		segments = append(segments, strings.Join(words[len(words)-size:], " "))
	}
	return segments
}

// isMatchable reports whether seg has enough words and alphanumeric
// characters to be unlikely to match unrelated text.
func (s *Searcher) isMatchable(seg string) bool {
	words := s.cfg.word.FindAllString(seg, -1)
	if len(words) < s.cfg.MinSegmentWords {
		return false
	}
	alnum := 0
	for _, w := range words {
		alnum += len(w)
	}
	return alnum >= s.cfg.MinSegmentAlnum
}
