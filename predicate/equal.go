package predicate

import "github.com/kmerindex/spgkmer/internal/page"

// Equal is the exact-match predicate: strategy 1.
type Equal struct {
	Query page.Key
}

func (p Equal) StrategyNumber() int { return StrategyEqual }

func (p Equal) InnerPrune(partial page.Key) bool {
	if len(partial) > len(p.Query) {
		return false
	}
	return partial.Equal(p.Query[:len(partial)])
}

func (p Equal) LeafCheck(full page.Key) bool {
	return full.Equal(p.Query)
}
