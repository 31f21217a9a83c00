package search

import (
	"strings"
	"unicode/utf8"
)

// orderedSet keeps unique strings in first-insertion order.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

// add inserts s unless it is already present. It reports whether s was new.
func (o *orderedSet) add(s string) bool {
	if _, ok := o.seen[s]; ok {
		return false
	}
	o.seen[s] = struct{}{}
	o.items = append(o.items, s)
	return true
}

func (o *orderedSet) list() []string {
	return o.items
}

// NormalizeSpaces trims s and collapses every whitespace run to one space.
// It is idempotent.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// longest returns the first of the longest strings in items.
func longest(items []string) string {
	var best string
	bestLen := -1
	for _, s := range items {
		if n := utf8.RuneCountInString(s); n > bestLen {
			best, bestLen = s, n
		}
	}
	return best
}

// lowerAll returns a lower-cased copy of words.
func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
