// Package codec implements the nucleotide / IUPAC alphabet codec: mapping
// each character to a 4-bit set and exposing the bitwise-intersection
// primitive that defines ambiguity-pattern matching.
package codec

import (
	"math/bits"

	"github.com/pkg/errors"
)

// NucMask is a 4-bit set over the nucleotide alphabet {A,C,G,T}, packed
// into the low nibble of a byte: A=0001, C=0010, G=0100, T=1000.
type NucMask byte

const (
	maskA NucMask = 1 << 0
	maskC NucMask = 1 << 1
	maskG NucMask = 1 << 2
	maskT NucMask = 1 << 3
)

// InvalidNucleotide reports a byte outside {A,C,G,T} found in a key.
type InvalidNucleotide struct{ Byte byte }

func (e *InvalidNucleotide) Error() string {
	return "invalid nucleotide byte " + quoteByte(e.Byte)
}

// InvalidIupac reports a byte outside the 15-letter IUPAC set in a pattern.
type InvalidIupac struct{ Byte byte }

func (e *InvalidIupac) Error() string {
	return "invalid IUPAC byte " + quoteByte(e.Byte)
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return "'" + string(rune(b)) + "'"
	}
	return "0x" + string("0123456789abcdef"[b>>4]) + string("0123456789abcdef"[b&0xf])
}

var nucTable [256]NucMask
var iupacTable [256]NucMask

func init() {
	nucTable['A'] = maskA
	nucTable['C'] = maskC
	nucTable['G'] = maskG
	nucTable['T'] = maskT

	iupac := map[byte]NucMask{
		'A': maskA,
		'C': maskC,
		'G': maskG,
		'T': maskT,
		'R': maskA | maskG,
		'Y': maskC | maskT,
		'S': maskG | maskC,
		'W': maskA | maskT,
		'K': maskG | maskT,
		'M': maskA | maskC,
		'B': maskC | maskG | maskT,
		'D': maskA | maskG | maskT,
		'H': maskA | maskC | maskT,
		'V': maskA | maskC | maskG,
		'N': maskA | maskC | maskG | maskT,
	}
	for c, m := range iupac {
		iupacTable[c] = m
	}
}

// NucBits maps a nucleotide character to its 4-bit set. c is expected
// upper-case; any byte outside {A,C,G,T} fails with InvalidNucleotide.
func NucBits(c byte) (NucMask, error) {
	m := nucTable[c]
	if m == 0 {
		return 0, errors.WithStack(&InvalidNucleotide{Byte: c})
	}
	return m, nil
}

// IupacBits maps an IUPAC ambiguity character to the union of its
// constituent nucleotide bits. c is expected upper-case; any byte outside
// the 15-letter set fails with InvalidIupac.
func IupacBits(c byte) (NucMask, error) {
	m := iupacTable[c]
	if m == 0 {
		return 0, errors.WithStack(&InvalidIupac{Byte: c})
	}
	return m, nil
}

// PatternMatches reports whether nucleotide k satisfies IUPAC pattern
// character p: iupac_bits(p) & nuc_bits(k) != 0.
func PatternMatches(p, k byte) (bool, error) {
	pm, err := IupacBits(p)
	if err != nil {
		return false, err
	}
	km, err := NucBits(k)
	if err != nil {
		return false, err
	}
	return pm&km != 0, nil
}

// PopCount returns the number of nucleotides in the mask's set.
func (m NucMask) PopCount() int {
	return bits.OnesCount8(byte(m))
}
