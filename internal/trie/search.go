package trie

import (
	"github.com/kmerindex/spgkmer/internal/page"
	"github.com/kmerindex/spgkmer/predicate"
)

// ChildSurvivor is one inner-node child slot that InnerConsistent decided
// could still lead to a satisfying leaf.
type ChildSurvivor struct {
	ChildIndex     int
	LevelAdvance   int
	Reconstruction page.Key // reconstructed-so-far key through this child
}

// InnerConsistent evaluates every predicate against the reconstructed
// partial key of each child slot of node, given the key reconstructed so
// far on the path to node (parentReconstruction). Only slots for which
// every predicate survives are returned. The reconstruction buffer is
// never mutated in place: each candidate gets its own owned Key built
// with page.Concat, so recursion backtracks trivially.
func InnerConsistent(parentReconstruction page.Key, node *InnerNode, preds []predicate.Predicate) []ChildSurvivor {
	base := page.Concat(parentReconstruction, node.Prefix)

	out := make([]ChildSurvivor, 0, len(node.Children))
	for i, c := range node.Children {
		var partial page.Key
		advance := c.Label.AdvancesLevel()
		switch c.Label.Kind {
		case LabelByte:
			partial = page.ConcatByte(base, c.Label.Byte)
		default:
			// Terminator and AllTheSame both consume zero extra bytes;
			// the reconstructed key stops at the node's prefix.
			partial = base
		}

		survives := true
		for _, p := range preds {
			if !p.InnerPrune(partial) {
				survives = false
				break
			}
		}
		if survives {
			out = append(out, ChildSurvivor{
				ChildIndex:     i,
				LevelAdvance:   len(node.Prefix) + advance,
				Reconstruction: partial,
			})
		}
	}
	return out
}

// LeafConsistent reconstructs the full key at a leaf as
// parentReconstruction ++ leaf.Residual and applies every predicate
// exactly. All predicates give an exact verdict; no rechecking is
// expected from the caller.
func LeafConsistent(parentReconstruction page.Key, leaf *LeafNode, preds []predicate.Predicate) bool {
	full := page.Concat(parentReconstruction, leaf.Residual)
	for _, p := range preds {
		if !p.LeafCheck(full) {
			return false
		}
	}
	return true
}
