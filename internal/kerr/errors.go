// Package kerr defines the fatal/structural error kinds raised by the trie
// and page layers: length violations, invariant breaks detected while
// mutating a node, and corruption detected while reading one. These are
// distinct from the alphabet errors in internal/codec, which are raised at
// the I/O boundary instead.
package kerr

import "fmt"

// KeyTooLong reports a key whose length exceeds the configured maximum.
type KeyTooLong struct {
	Len, Max int
}

func (e *KeyTooLong) Error() string {
	return fmt.Sprintf("key length %d exceeds maximum %d", e.Len, e.Max)
}

// UnsupportedStrategy reports an external driver request for an unknown
// strategy number.
type UnsupportedStrategy struct {
	Strategy int
}

func (e *UnsupportedStrategy) Error() string {
	return fmt.Sprintf("unsupported strategy number %d", e.Strategy)
}

// TreeInvariantViolated reports an internal inconsistency detected while
// constructing or mutating a node (unsorted labels, duplicate labels, an
// oversized prefix, an all-the-same node with more than one child slot,
// and so on). Fatal: the core never silently repairs.
type TreeInvariantViolated struct {
	Reason string
}

func (e *TreeInvariantViolated) Error() string {
	return "tree invariant violated: " + e.Reason
}

// CorruptNode reports a node page that fails structural validation at read
// time. Fatal; the traversal of other subtrees is unaffected.
type CorruptNode struct {
	Reason string
}

func (e *CorruptNode) Error() string {
	return "corrupt node: " + e.Reason
}
