package spgkmer

import (
	"github.com/kmerindex/spgkmer/internal/codec"
	"github.com/kmerindex/spgkmer/internal/kerr"
)

// Error kinds this package can return. Alphabet- and length-related
// errors surface from the I/O boundary (key/pattern construction);
// TreeInvariantViolated and CorruptNode surface from within the trie
// engine and abort the current operation without mutating the tree.
type (
	// InvalidNucleotide is a character outside {A,C,G,T} in a key.
	InvalidNucleotide = codec.InvalidNucleotide
	// InvalidIupac is a character outside the 15-letter IUPAC set in a pattern.
	InvalidIupac = codec.InvalidIupac
	// KeyTooLong is a key whose length exceeds MaxKeyLen.
	KeyTooLong = kerr.KeyTooLong
	// UnsupportedStrategy is an external driver request for an unrecognized
	// strategy number.
	UnsupportedStrategy = kerr.UnsupportedStrategy
	// TreeInvariantViolated is a fatal internal inconsistency.
	TreeInvariantViolated = kerr.TreeInvariantViolated
	// CorruptNode is a node page that fails structural validation at read.
	CorruptNode = kerr.CorruptNode
)
