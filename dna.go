package spgkmer

import (
	"strings"

	"github.com/kmerindex/spgkmer/internal/codec"
	"github.com/kmerindex/spgkmer/internal/ioboundary"
	"github.com/kmerindex/spgkmer/internal/kerr"
	"github.com/kmerindex/spgkmer/internal/page"
	"github.com/kmerindex/spgkmer/internal/trie"
)

// Key is the variable-length byte-string value the trie indexes and
// queries operate on: a k-mer, an IUPAC pattern, or an internal node
// prefix/residual, always in upper-case canonical form.
type Key = page.Key

// MaxKeyLen is the longest k-mer or pattern this index accepts.
const MaxKeyLen = trie.MaxKeyLen

// NewKmer validates and upper-cases a nucleotide string, rejecting any
// byte outside {A,C,G,T} (InvalidNucleotide) and any string longer than
// MaxKeyLen (KeyTooLong). Case-insensitive on input, exactly like NewQKmer.
func NewKmer(s string) (Key, error) {
	s = ioboundary.NormalizeLine(s)
	if len(s) > MaxKeyLen {
		return nil, &kerr.KeyTooLong{Len: len(s), Max: MaxKeyLen}
	}
	up := strings.ToUpper(s)
	k := Key(up)
	for i := 0; i < len(k); i++ {
		if _, err := codec.NucBits(k[i]); err != nil {
			return nil, err
		}
	}
	return k.Clone(), nil
}

// NewQKmer validates and upper-cases an IUPAC ambiguity-pattern string,
// rejecting any byte outside the 15-letter IUPAC set (InvalidIupac) and
// any string longer than MaxKeyLen (KeyTooLong).
func NewQKmer(s string) (Key, error) {
	s = ioboundary.NormalizeLine(s)
	if len(s) > MaxKeyLen {
		return nil, &kerr.KeyTooLong{Len: len(s), Max: MaxKeyLen}
	}
	up := strings.ToUpper(s)
	k := Key(up)
	for i := 0; i < len(k); i++ {
		if _, err := codec.IupacBits(k[i]); err != nil {
			return nil, err
		}
	}
	return k.Clone(), nil
}
