package predicate

import "github.com/kmerindex/spgkmer/internal/page"

// Prefix is the prefix-match predicate: strategy 2. A query longer than
// every indexed key matches nothing, standard trie prefix semantics.
type Prefix struct {
	Query page.Key
}

func (p Prefix) StrategyNumber() int { return StrategyPrefix }

func (p Prefix) InnerPrune(partial page.Key) bool {
	n := len(partial)
	if n > len(p.Query) {
		n = len(p.Query)
	}
	return partial[:n].Equal(p.Query[:n])
}

func (p Prefix) LeafCheck(full page.Key) bool {
	if len(full) < len(p.Query) {
		return false
	}
	return full[:len(p.Query)].Equal(p.Query)
}
