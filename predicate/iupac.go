package predicate

import (
	"github.com/kmerindex/spgkmer/internal/codec"
	"github.com/kmerindex/spgkmer/internal/page"
)

// IupacContains is the ambiguity-pattern-containment predicate: strategy 3.
// Semantics are "equal-length overlay" only: a pattern contains a key iff
// they have the same length and every position's pattern mask intersects
// the key's nucleotide bit.
type IupacContains struct {
	pattern page.Key
	masks   []codec.NucMask
}

// NewIupacContains validates pattern against the IUPAC alphabet and
// precomputes its per-position bit masks once, so InnerPrune/LeafCheck
// never re-decode pattern bytes on the hot traversal path.
func NewIupacContains(pattern page.Key) (IupacContains, error) {
	masks := make([]codec.NucMask, len(pattern))
	for i, c := range pattern {
		m, err := codec.IupacBits(c)
		if err != nil {
			return IupacContains{}, err
		}
		masks[i] = m
	}
	return IupacContains{pattern: pattern.Clone(), masks: masks}, nil
}

func (p IupacContains) StrategyNumber() int { return StrategyIupacContains }

// InnerPrune survives iff L <= len(pattern) and every already-decoded
// position of partial intersects the corresponding pattern mask. A
// partial already longer than the pattern can never yield an equal-length
// match, so it is pruned.
func (p IupacContains) InnerPrune(partial page.Key) bool {
	if len(partial) > len(p.masks) {
		return false
	}
	for i, k := range partial {
		km, err := codec.NucBits(k)
		if err != nil || p.masks[i]&km == 0 {
			return false
		}
	}
	return true
}

func (p IupacContains) LeafCheck(full page.Key) bool {
	if len(full) != len(p.masks) {
		return false
	}
	for i, k := range full {
		km, err := codec.NucBits(k)
		if err != nil || p.masks[i]&km == 0 {
			return false
		}
	}
	return true
}
