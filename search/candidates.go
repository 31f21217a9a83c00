package search

import "strings"

// Candidates returns the spellings of phrase to try as literal search strings,
// most literal first: the phrase itself, whitespace normalized, with wrap
// hyphens removed, and with wrap hyphens kept but their trailing space
// dropped. Every entry is trimmed, non-empty and distinct.
func (s *Searcher) Candidates(phrase string) []string {
	if phrase == "" {
		return nil
	}
	set := newOrderedSet()
	add := func(v string) {
		if v = strings.TrimSpace(v); v != "" {
			set.add(v)
		}
	}

	add(phrase)
	normalized := NormalizeSpaces(phrase)
	add(normalized)

	dehyphen := s.replaceHyphens(normalized, "")
	add(dehyphen)
	add(NormalizeSpaces(dehyphen))

	keepHyphen := s.replaceHyphens(normalized, "-")
	add(keepHyphen)
	add(NormalizeSpaces(keepHyphen))

	return set.list()
}

// NormalizeKeyText folds text into the form used to compare instruction
// needles: whitespace normalized and wrap hyphens removed.
func (s *Searcher) NormalizeKeyText(text string) string {
	return s.replaceHyphens(NormalizeSpaces(text), "")
}

func (s *Searcher) replaceHyphens(text, with string) string {
	out, err := s.cfg.dehyphen.Replace(text, with, -1, -1)
	if err != nil {
		// Only a match timeout fails, and none is configured.
		return text
	}
	return out
}
