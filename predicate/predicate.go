// Package predicate implements the three query predicate kinds the trie's
// search engine accelerates: exact equality, prefix match, and IUPAC
// ambiguity-pattern containment. New predicates can be added here without
// touching the traversal core, which only ever sees the Predicate
// interface.
package predicate

import "github.com/kmerindex/spgkmer/internal/page"

// Strategy numbers are part of the external query-predicate contract and
// must not change.
const (
	StrategyEqual         = 1
	StrategyPrefix        = 2
	StrategyIupacContains = 3
)

// Predicate is a query predicate that can both prune inner-node subtrees
// (InnerPrune, evaluated against a partially-reconstructed key of length L)
// and give an exact verdict on a fully reconstructed leaf key (LeafCheck).
type Predicate interface {
	// StrategyNumber identifies which external strategy this predicate
	// implements.
	StrategyNumber() int

	// InnerPrune reports whether a subtree whose reconstructed-so-far key
	// is partial could still contain a key satisfying this predicate. A
	// false result prunes the subtree; InnerPrune must never return false
	// for a partial key that is a true prefix of a satisfying full key.
	InnerPrune(partial page.Key) bool

	// LeafCheck gives the exact verdict for a fully reconstructed key.
	LeafCheck(full page.Key) bool
}
