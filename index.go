// Package spgkmer implements a space-partitioned prefix-tree (radix trie)
// index over short fixed-alphabet DNA strings, accelerating three query
// predicates: exact equality, prefix match, and IUPAC ambiguity-pattern
// containment.
package spgkmer

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/kmerindex/spgkmer/internal/trie"
	"github.com/kmerindex/spgkmer/predicate"
)

// RowRef is an opaque reference to the external row a leaf indexes (a
// ctid, a primary key, or any caller-chosen handle).
type RowRef = trie.RowRef

// Index is the top-level radix trie index over k-mer keys. It wraps an
// in-process Arena standing in for an external page-oriented store, and
// is safe for concurrent use: readers take a shared lock, insertions are
// serialized one at a time.
type Index struct {
	arena *trie.Arena
}

// New returns an empty Index using DefaultConfig.
func New() *Index {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns an empty Index tuned by cfg. Zero-valued fields
// in cfg fall back to their documented defaults.
func NewWithConfig(cfg Config) *Index {
	cfg = cfg.withDefaults()
	return &Index{arena: trie.NewArenaWithCapacity(cfg.MaxLeavesPerPage)}
}

// Insert adds key (already validated via NewKmer) to the index, associated
// with row. Duplicate keys are permitted; each Insert creates a new leaf.
func (ix *Index) Insert(key Key, row RowRef) error {
	return ix.arena.Insert(key, row)
}

// Lookup returns every row reference stored under a key exactly equal to
// query, as a duplicate-preserving slice.
func (ix *Index) Lookup(query Key) ([]RowRef, error) {
	return ix.Scan(predicate.Equal{Query: query})
}

// PrefixSearch returns every row reference stored under a key with the
// given prefix.
func (ix *Index) PrefixSearch(prefix Key) ([]RowRef, error) {
	return ix.Scan(predicate.Prefix{Query: prefix})
}

// IupacSearch returns every row reference stored under a key the same
// length as pattern, where every position's nucleotide lies in the
// pattern position's allowed set.
func (ix *Index) IupacSearch(pattern Key) ([]RowRef, error) {
	p, err := predicate.NewIupacContains(pattern)
	if err != nil {
		return nil, err
	}
	return ix.Scan(p)
}

// Scan evaluates an arbitrary set of predicates (conjunctively) against
// the index and returns the surviving row references, duplicates
// preserved, in traversal order.
func (ix *Index) Scan(preds ...predicate.Predicate) ([]RowRef, error) {
	return ix.arena.Scan(preds), nil
}

// ScanSet is like Scan but returns a deduplicated *set3.Set3[RowRef],
// exercising the same Set3 container the index's split routine uses
// internally (see internal/trie.PickSplit).
func (ix *Index) ScanSet(preds ...predicate.Predicate) (*set3.Set3[RowRef], error) {
	rows, err := ix.Scan(preds...)
	if err != nil {
		return nil, err
	}
	out := set3.Empty[RowRef]()
	for _, r := range rows {
		out.Add(r)
	}
	return out, nil
}
