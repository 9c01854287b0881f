package trie

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/kmerindex/spgkmer/internal/kerr"
	"github.com/kmerindex/spgkmer/internal/obslog"
	"github.com/kmerindex/spgkmer/internal/page"
)

const (
	// MaxKeyLen is the longest k-mer/pattern this index accepts.
	MaxKeyLen = 32
	// MaxPatternLen mirrors MaxKeyLen for IUPAC patterns.
	MaxPatternLen = 32

	// pageCapacity is the storage page size an inner node must fit in.
	pageCapacity = 8192
	// bookkeeping is the per-page overhead (flag byte, child count,
	// alignment) subtracted from pageCapacity before sizing prefixes.
	bookkeeping = 24
)

// MaxPrefix is the longest common prefix an inner node may carry:
// pageCapacity minus per-page bookkeeping overhead, floored at MaxKeyLen.
var MaxPrefix = maxInt(pageCapacity-bookkeeping, MaxKeyLen)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Downlink is a reference to a child node page. Its representation is
// defined and owned by the external store; the core treats it as opaque.
type Downlink uint64

// RowRef is an opaque reference to the external row that a leaf indexes.
type RowRef uint64

// ChildSlot is one entry of an inner node's sorted label array.
type ChildSlot struct {
	Label Label
	Down  Downlink
}

// InnerNode carries an optional common prefix and a sorted, label-unique
// array of child slots. IsAllTheSame reports whether this node is the
// all-the-same shape produced when a leaf page of identical keys is split
// (its single child slot carries the AllTheSame label in that case).
type InnerNode struct {
	Prefix   page.Key
	Children []ChildSlot
}

// NewInner validates and constructs an inner node. Children need not be
// pre-sorted; NewInner sorts them and rejects duplicate or malformed label
// sets with TreeInvariantViolated.
func NewInner(prefix page.Key, children []ChildSlot) (*InnerNode, error) {
	if len(prefix) > MaxPrefix {
		err := errors.WithStack(&kerr.TreeInvariantViolated{Reason: "prefix longer than MAX_PREFIX"})
		obslog.Log.Error().Int("prefixLen", len(prefix)).Int("maxPrefix", MaxPrefix).Msg(err.Error())
		return nil, err
	}
	cs := make([]ChildSlot, len(children))
	copy(cs, children)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Label.Less(cs[j].Label) })

	hasAllSame := false
	for i, c := range cs {
		if i > 0 && cs[i-1].Label.Equal(c.Label) {
			err := errors.WithStack(&kerr.TreeInvariantViolated{Reason: "duplicate child label"})
			obslog.Log.Error().Str("label", c.Label.String()).Msg(err.Error())
			return nil, err
		}
		if c.Label.Kind == LabelAllTheSame {
			hasAllSame = true
		}
	}
	if hasAllSame && len(cs) != 1 {
		err := errors.WithStack(&kerr.TreeInvariantViolated{Reason: "all-the-same label must be the node's only child"})
		obslog.Log.Error().Int("childCount", len(cs)).Msg(err.Error())
		return nil, err
	}
	return &InnerNode{Prefix: prefix.Clone(), Children: cs}, nil
}

// IsAllTheSame reports whether n is the all-the-same shape: a single child
// slot labelled with the reserved AllTheSame sentinel.
func (n *InnerNode) IsAllTheSame() bool {
	return len(n.Children) == 1 && n.Children[0].Label.Kind == LabelAllTheSame
}

// Find returns the index of the child slot carrying label, and whether one
// was found, using binary search over the sorted label array.
func (n *InnerNode) Find(label Label) (int, bool) {
	rank := label.rank()
	i := sort.Search(len(n.Children), func(i int) bool {
		return n.Children[i].Label.rank() >= rank
	})
	if i < len(n.Children) && n.Children[i].Label.Equal(label) {
		return i, true
	}
	return i, false
}

// LeafNode carries the residual suffix of one indexed key plus the opaque
// row reference supplied by the external store.
type LeafNode struct {
	Residual page.Key
	Row      RowRef
}

// NewLeaf constructs a leaf node, cloning residual so the caller's buffer
// may be reused.
func NewLeaf(residual page.Key, row RowRef) *LeafNode {
	return &LeafNode{Residual: residual.Clone(), Row: row}
}
