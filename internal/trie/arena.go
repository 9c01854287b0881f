package trie

import (
	"sync"

	"github.com/kmerindex/spgkmer/internal/kerr"
	"github.com/kmerindex/spgkmer/internal/page"
	"github.com/kmerindex/spgkmer/predicate"
)

// DefaultMaxLeavesPerPage bounds how many leaf tuples a single leaf page
// holds before PickSplit converts it into an inner node, used when the
// caller does not override it via Config.
const DefaultMaxLeavesPerPage = 32

type pageKind int

const (
	pageKindInner pageKind = iota
	pageKindLeaf
)

type leafPage struct {
	leaves []*LeafNode
}

type storedPage struct {
	kind  pageKind
	inner *InnerNode
	leaf  *leafPage
}

// Arena is the in-process stand-in for an external page-oriented store:
// it owns node pages and drives the four callbacks (Choose, PickSplit,
// InnerConsistent, LeafConsistent) against them. A single sync.RWMutex
// guards it: readers run concurrently, insertions run one at a time.
type Arena struct {
	mu               sync.RWMutex
	pages            map[Downlink]*storedPage
	nextID           Downlink
	maxLeavesPerPage int
}

// NewArena returns an empty Arena with a single empty inner node as root,
// using the default leaf-page capacity.
func NewArena() *Arena {
	return NewArenaWithCapacity(DefaultMaxLeavesPerPage)
}

// NewArenaWithCapacity is like NewArena but lets the caller override the
// leaf-page capacity that triggers PickSplit; maxLeaves <= 0 falls back to
// the default.
func NewArenaWithCapacity(maxLeaves int) *Arena {
	if maxLeaves <= 0 {
		maxLeaves = DefaultMaxLeavesPerPage
	}
	a := &Arena{pages: make(map[Downlink]*storedPage), maxLeavesPerPage: maxLeaves}
	a.pages[0] = &storedPage{kind: pageKindInner, inner: &InnerNode{}}
	a.nextID = 1
	return a
}

const rootID Downlink = 0

func (a *Arena) allocID() Downlink {
	id := a.nextID
	a.nextID++
	return id
}

// Insert adds key/row to the trie. Duplicate keys are permitted and
// stored as separate leaves.
func (a *Arena) Insert(key page.Key, row RowRef) error {
	if len(key) > MaxKeyLen {
		return &kerr.KeyTooLong{Len: len(key), Max: MaxKeyLen}
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	curID := rootID
	level := 0
	viaAllTheSame := false
	for {
		pg := a.pages[curID]
		if pg == nil {
			return corrupt("dangling downlink")
		}

		if pg.kind == pageKindLeaf {
			return a.insertIntoLeafPage(pg, curID, key, level, row, viaAllTheSame)
		}

		ctx := DescentContext{Key: key, Level: level, Node: pg.inner, AllTheSame: pg.inner.IsAllTheSame()}
		decision, err := Choose(ctx)
		if err != nil {
			return err
		}

		switch decision.Kind {
		case DecisionDescend:
			curID = pg.inner.Children[decision.ChildIndex].Down
			level += decision.LevelAdvance
			viaAllTheSame = false
			continue

		case DecisionAddChild:
			newLeafID := a.allocID()
			a.pages[newLeafID] = &storedPage{kind: pageKindLeaf, leaf: &leafPage{
				leaves: []*LeafNode{NewLeaf(decision.NewResidual, row)},
			}}
			children := append(append([]ChildSlot{}, pg.inner.Children...), ChildSlot{Label: decision.NewLabel, Down: newLeafID})
			updated, err := NewInner(pg.inner.Prefix, children)
			if err != nil {
				return err
			}
			pg.inner = updated
			return nil

		case DecisionSplitUpward:
			if decision.AllTheSameVariant {
				// No byte or terminator label can ever equal the sentinel,
				// so every residual reaching an all-the-same node funnels
				// into its sole child forever; the sentinel's own
				// contribution to the level is the node's already-matched
				// prefix, not an extra byte.
				curID = pg.inner.Children[0].Down
				level += len(decision.NewPrefix)
				viaAllTheSame = true
				continue
			}
			oldNodeID := a.allocID()
			a.pages[oldNodeID] = &storedPage{kind: pageKindInner, inner: pg.inner}
			upper, err := NewInner(decision.NewPrefix, []ChildSlot{{Label: decision.OldNodeLabel, Down: oldNodeID}})
			if err != nil {
				return err
			}
			// Relocate the old node's prefix onto its new page; the upper
			// node now occupies curID and the next loop iteration reissues
			// Choose at the same level, which always yields AddChild next.
			oldRelocated, err := NewInner(decision.OldNodeNewPrefix, pg.inner.Children)
			if err != nil {
				return err
			}
			a.pages[oldNodeID].inner = oldRelocated
			pg.inner = upper
			continue
		}
	}
}

func (a *Arena) insertIntoLeafPage(pg *storedPage, pageID Downlink, key page.Key, level int, row RowRef, viaAllTheSame bool) error {
	residual := key.Suffix(level)
	if viaAllTheSame || len(pg.leaf.leaves) < a.maxLeavesPerPage {
		// A page reached through an all-the-same sentinel can never be
		// discriminated any further (PickSplit only ever collapses a
		// batch to one group when every member is byte-for-byte
		// identical), so it grows without limit instead of re-splitting
		// on every insert past capacity.
		pg.leaf.leaves = append(pg.leaf.leaves, NewLeaf(residual, row))
		return nil
	}

	batch := make([]LeafInput, 0, len(pg.leaf.leaves)+1)
	for _, lf := range pg.leaf.leaves {
		batch = append(batch, LeafInput{Key: lf.Residual, Row: lf.Row})
	}
	batch = append(batch, LeafInput{Key: residual, Row: row})

	prefix, groups, _, err := PickSplit(batch)
	if err != nil {
		return err
	}
	children := make([]ChildSlot, len(groups))
	for i, g := range groups {
		id := a.allocID()
		a.pages[id] = &storedPage{kind: pageKindLeaf, leaf: &leafPage{leaves: g.Leaves}}
		label := g.Label
		if len(groups) == 1 && len(batch) > 1 {
			// The batch could not be discriminated at all (every key
			// produced the same discriminator byte): the external driver
			// must use a page with the all-the-same flag set.
			label = AllTheSame
		}
		children[i] = ChildSlot{Label: label, Down: id}
	}
	inner, err := NewInner(prefix, children)
	if err != nil {
		return err
	}
	pg.kind = pageKindInner
	pg.inner = inner
	pg.leaf = nil
	return nil
}

// Scan returns every row reference reachable under preds, in traversal
// order (duplicates preserved; de-duplication is left to the caller).
func (a *Arena) Scan(preds []predicate.Predicate) []RowRef {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []RowRef
	a.walk(rootID, page.Key{}, preds, &out)
	return out
}

func (a *Arena) walk(id Downlink, reconstruction page.Key, preds []predicate.Predicate, out *[]RowRef) {
	pg := a.pages[id]
	if pg == nil {
		return
	}
	if pg.kind == pageKindLeaf {
		for _, lf := range pg.leaf.leaves {
			if LeafConsistent(reconstruction, lf, preds) {
				*out = append(*out, lf.Row)
			}
		}
		return
	}
	for _, surv := range InnerConsistent(reconstruction, pg.inner, preds) {
		child := pg.inner.Children[surv.ChildIndex]
		a.walk(child.Down, surv.Reconstruction, preds, out)
	}
}
