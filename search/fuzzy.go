package search

import (
	"github.com/pmezard/go-difflib/difflib"
)

// FuzzySpan aligns target against the words of pageText. It slides a window
// of the target's word count over the page one word at a time and scores each
// window with difflib's block-matching ratio, ignoring case. When the best
// window reaches MinFuzzyRatio, the page text it covers is returned verbatim.
//
// The earliest window wins ties. Targets with fewer than MinFuzzyWords words,
// or longer than the page, are declined with a zero ratio.
func (s *Searcher) FuzzySpan(pageText, target string) (span string, ratio float64, ok bool) {
	targetWords := lowerAll(s.cfg.word.FindAllString(target, -1))
	if len(targetWords) < s.cfg.MinFuzzyWords {
		return "", 0, false
	}

	spans := s.cfg.word.FindAllStringIndex(pageText, -1)
	if len(spans) < len(targetWords) {
		return "", 0, false
	}

	pageWords := make([]string, len(spans))
	for i, sp := range spans {
		pageWords[i] = pageText[sp[0]:sp[1]]
	}
	pageWords = lowerAll(pageWords)

	window := len(targetWords)
	best, bestAt := 0.0, -1
	for i := 0; i+window <= len(pageWords); i++ {
		r := difflib.NewMatcher(targetWords, pageWords[i:i+window]).Ratio()
		if r > best {
			best, bestAt = r, i
		}
	}

	if bestAt < 0 || best < s.cfg.MinFuzzyRatio {
		return "", best, false
	}
	start := spans[bestAt][0]
	end := spans[bestAt+window-1][1]
	return pageText[start:end], best, true
}
