package spgkmer

import "github.com/kmerindex/spgkmer/internal/trie"

// Config holds the tunable knobs for an Index. NewWithConfig replaces
// zero-valued fields with their defaults, so the zero value behaves like
// DefaultConfig; start from DefaultConfig and override only the fields
// that matter.
type Config struct {
	// MaxLeavesPerPage bounds how many leaf tuples a single leaf page
	// holds before it is split into an inner node. Smaller values trade
	// more inner nodes (deeper traversal) for cheaper, more granular
	// splits; larger values trade a flatter tree for linear-scan cost
	// within each oversized page.
	MaxLeavesPerPage int
}

// DefaultConfig returns the Config New uses when none is supplied.
func DefaultConfig() Config {
	return Config{MaxLeavesPerPage: trie.DefaultMaxLeavesPerPage}
}

func (c Config) withDefaults() Config {
	if c.MaxLeavesPerPage <= 0 {
		c.MaxLeavesPerPage = trie.DefaultMaxLeavesPerPage
	}
	return c
}
