// Package mock provides a test double for search.Page.
//
// The Page double treats its Contents as already extracted text. Search does a
// case-insensitive substring match and returns one quad per occurrence, with
// the occurrence's byte offset as its X range, so tests can tell hits apart:
//
//	page := mock.NewPage("the quick brown fox jumps over the lazy dog")
//	quads, err := searcher.FindQuads(ctx, page, "brown fox")
//	calls := page.Calls()
//
// SearchFunc and TextFunc replace the default behavior when set.
package mock
