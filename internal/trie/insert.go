package trie

import (
	"sort"

	set3 "github.com/TomTonic/Set3"
	"github.com/pkg/errors"

	"github.com/kmerindex/spgkmer/internal/kerr"
	"github.com/kmerindex/spgkmer/internal/page"
)

// DescentContext is the bundle passed into Choose at one level of an
// insertion descent: the full key being inserted, the byte offset already
// consumed (Level), the inner node being examined, and whether that node is
// the all-the-same shape (see InnerNode.IsAllTheSame). For such a node
// Choose returns the all-the-same SplitUpward variant, which Arena executes
// by descending into the sole child without splitting anything.
type DescentContext struct {
	Key        page.Key
	Level      int
	Node       *InnerNode
	AllTheSame bool
}

// DecisionKind identifies which of the three Choose outcomes a Decision
// carries.
type DecisionKind int

const (
	DecisionDescend DecisionKind = iota
	DecisionAddChild
	DecisionSplitUpward
)

// Decision is the typed command Choose returns. The insertion engine never
// mutates a node itself; the external driver executes exactly one of these
// against the node it fetched.
type Decision struct {
	Kind DecisionKind

	// Populated for DecisionDescend.
	ChildIndex   int
	LevelAdvance int
	Residual     page.Key

	// Populated for DecisionAddChild.
	NewLabel    Label
	InsertPos   int
	NewResidual page.Key // residual the freshly created leaf should carry

	// Populated for DecisionSplitUpward.
	AllTheSameVariant bool
	NewPrefix         page.Key // prefix of the freshly inserted upper node (all-the-same variant: the node's own prefix)
	OldNodeLabel      Label    // label the upper node uses for the old node's slot (prefix-divergence variant only)
	OldNodeNewPrefix  page.Key // the old node's prefix after split (prefix-divergence variant only)
}

// Choose implements the single-level insertion decision: given the node
// at the current descent level, it decides whether to descend into an
// existing child, add a new child, or split the node upward.
func Choose(ctx DescentContext) (Decision, error) {
	if ctx.Level > len(ctx.Key) {
		return Decision{}, errors.WithStack(&kerr.TreeInvariantViolated{Reason: "descent level beyond key length"})
	}
	remainder := ctx.Key.Suffix(ctx.Level)
	prefix := ctx.Node.Prefix
	cpl := page.CommonPrefixLen(remainder, prefix)

	if cpl < len(prefix) {
		// The node's prefix does not fully match: split-upward, prefix
		// divergence variant. The incoming key descends no further in
		// this call; the caller reissues insertion on the new upper node.
		return Decision{
			Kind:             DecisionSplitUpward,
			NewPrefix:        remainder[:cpl].Clone(),
			OldNodeLabel:     ByteLabel(prefix[cpl]),
			OldNodeNewPrefix: prefix.Suffix(cpl + 1),
		}, nil
	}

	// Full prefix matched (cpl == len(prefix)); the first byte past the
	// prefix (or the terminator sentinel, if the key ends here) is the
	// discriminator.
	residue := remainder.Suffix(len(prefix))
	var label Label
	if len(residue) == 0 {
		label = Terminator
	} else {
		label = ByteLabel(residue[0])
	}

	if idx, found := ctx.Node.Find(label); found {
		advance := len(prefix)
		next := residue
		if label.Kind == LabelByte {
			advance++
			next = residue.Suffix(1)
		}
		return Decision{
			Kind:         DecisionDescend,
			ChildIndex:   idx,
			LevelAdvance: advance,
			Residual:     next,
		}, nil
	}

	if ctx.AllTheSame {
		return Decision{
			Kind:              DecisionSplitUpward,
			AllTheSameVariant: true,
			NewPrefix:         prefix.Clone(),
		}, nil
	}

	idx, _ := ctx.Node.Find(label)
	newResidual := residue
	if label.Kind == LabelByte {
		newResidual = residue.Suffix(1)
	}
	return Decision{
		Kind:        DecisionAddChild,
		NewLabel:    label,
		InsertPos:   idx,
		NewResidual: newResidual,
	}, nil
}

// LeafInput is one key/row pair being folded into a new inner node by
// PickSplit.
type LeafInput struct {
	Key page.Key
	Row RowRef
}

// SplitGroup is one child slot's worth of leaves produced by PickSplit:
// the keys sharing a discriminator byte, stripped of the common prefix and
// the discriminator itself.
type SplitGroup struct {
	Label  Label
	Leaves []*LeafNode
}

// PickSplit folds a non-empty batch of keys into a common prefix and a
// set of discriminator groups. assignment[i] is the index into groups
// that batch[i] was placed
// in. The caller is responsible for allocating a page per group and
// supplying the resulting Downlinks to NewInner; PickSplit never
// allocates pages itself.
func PickSplit(batch []LeafInput) (prefix page.Key, groups []SplitGroup, assignment []int, err error) {
	if len(batch) == 0 {
		return nil, nil, nil, errors.WithStack(&kerr.TreeInvariantViolated{Reason: "picksplit called with empty batch"})
	}

	prefix = batch[0].Key
	for _, b := range batch[1:] {
		cpl := page.CommonPrefixLen(prefix, b.Key)
		prefix = prefix[:cpl]
	}
	if len(prefix) > MaxPrefix {
		prefix = prefix[:MaxPrefix]
	}
	prefix = prefix.Clone()

	type discEntry struct {
		label Label
		idx   int
	}
	discs := make([]discEntry, len(batch))
	distinct := set3.Empty[int]()
	for i, b := range batch {
		residue := b.Key.Suffix(len(prefix))
		var lbl Label
		if len(residue) == 0 {
			lbl = Terminator
		} else {
			lbl = ByteLabel(residue[0])
		}
		discs[i] = discEntry{label: lbl, idx: i}
		distinct.Add(lbl.rank())
	}
	sort.SliceStable(discs, func(i, j int) bool { return discs[i].label.Less(discs[j].label) })

	groups = make([]SplitGroup, 0, distinct.Size())
	assignment = make([]int, len(batch))
	var cur *SplitGroup
	for _, d := range discs {
		if cur == nil || !cur.Label.Equal(d.label) {
			groups = append(groups, SplitGroup{Label: d.label})
			cur = &groups[len(groups)-1]
		}
		b := batch[d.idx]
		residue := b.Key.Suffix(len(prefix))
		var leafResidual page.Key
		if d.label.Kind == LabelByte {
			leafResidual = residue.Suffix(1)
		} else {
			leafResidual = residue.Suffix(0)
		}
		cur.Leaves = append(cur.Leaves, NewLeaf(leafResidual, b.Row))
		assignment[d.idx] = len(groups) - 1
	}

	if distinct.Size() >= 2 && len(groups) < 2 {
		return nil, nil, nil, errors.WithStack(&kerr.TreeInvariantViolated{Reason: "picksplit produced fewer groups than distinct discriminators"})
	}
	if int(distinct.Size()) != len(groups) {
		return nil, nil, nil, errors.WithStack(&kerr.TreeInvariantViolated{Reason: "picksplit group count disagrees with distinct discriminator count"})
	}
	return prefix, groups, assignment, nil
}
