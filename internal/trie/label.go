// Package trie implements the radix trie node model, the insertion engine
// (choose/picksplit), and the search engine (inner_consistent/leaf_consistent)
// over fixed-alphabet DNA keys.
package trie

// LabelKind distinguishes the three kinds of child-slot labels a trie node
// can carry. Using a sum type instead of a raw int16 with magic negative
// values (as the host store's wire format does) makes sentinel collisions
// with the high bit of a byte value structurally impossible.
type LabelKind byte

const (
	// LabelByte is an ordinary nucleotide byte label.
	LabelByte LabelKind = iota
	// LabelTerminator (wire value -1) marks "the key terminates here":
	// used when one indexed key is a proper prefix of another.
	LabelTerminator
	// LabelAllTheSame (wire value -2) marks the split-when-ambiguous case:
	// every child slot of this node would carry an identical downlink.
	LabelAllTheSame
)

// Label is a trie child-slot label: either a nucleotide byte or one of the
// two reserved sentinels.
type Label struct {
	Kind LabelKind
	Byte byte // meaningful only when Kind == LabelByte
}

// ByteLabel constructs an ordinary byte label.
func ByteLabel(b byte) Label { return Label{Kind: LabelByte, Byte: b} }

// Terminator is the sentinel label for "key ends here".
var Terminator = Label{Kind: LabelTerminator}

// AllTheSame is the sentinel label for the all-the-same split case.
var AllTheSame = Label{Kind: LabelAllTheSame}

// rank orders AllTheSame < Terminator < any byte value, matching the wire
// encoding's -2 < -1 < 0..255 ordering.
func (l Label) rank() int {
	switch l.Kind {
	case LabelAllTheSame:
		return -2
	case LabelTerminator:
		return -1
	default:
		return int(l.Byte)
	}
}

// Less reports whether l sorts strictly before other.
func (l Label) Less(other Label) bool { return l.rank() < other.rank() }

// Equal reports whether l and other denote the same label.
func (l Label) Equal(other Label) bool {
	if l.Kind != other.Kind {
		return false
	}
	return l.Kind != LabelByte || l.Byte == other.Byte
}

// AdvancesLevel reports how many bytes of the descending key this label
// consumes: 1 for an ordinary byte, 0 for either sentinel.
func (l Label) AdvancesLevel() int {
	if l.Kind == LabelByte {
		return 1
	}
	return 0
}

// Int16 returns the 16-bit signed wire encoding of l.
func (l Label) Int16() int16 {
	return int16(l.rank())
}

// LabelFromInt16 decodes the wire encoding of a label.
func LabelFromInt16(v int16) Label {
	switch v {
	case -1:
		return Terminator
	case -2:
		return AllTheSame
	default:
		return ByteLabel(byte(v))
	}
}

func (l Label) String() string {
	switch l.Kind {
	case LabelTerminator:
		return "<terminator>"
	case LabelAllTheSame:
		return "<all-the-same>"
	default:
		return string(rune(l.Byte))
	}
}
