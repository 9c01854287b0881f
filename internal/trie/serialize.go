package trie

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/kmerindex/spgkmer/internal/kerr"
	"github.com/kmerindex/spgkmer/internal/obslog"
	"github.com/kmerindex/spgkmer/internal/page"
)

func corrupt(reason string) error {
	err := errors.WithStack(&kerr.CorruptNode{Reason: reason})
	obslog.Log.Error().Msg(err.Error())
	return err
}

// Persisted node layout:
//
//	1 byte   flag (bit0 isLeaf, bit1 hasPrefix, bit2 allTheSame)
//	[prefix] length-prefixed prefix bytes (a leaf's residual), if hasPrefix
//	inner:   2-byte child count, then that many (2-byte label, 8-byte downlink)
//	leaf:    8-byte row reference (an empty residual clears hasPrefix)
const (
	flagIsLeaf     = 1 << 0
	flagHasPrefix  = 1 << 1
	flagAllTheSame = 1 << 2
)

// EncodeInner serializes n into the persisted inner-node layout.
func EncodeInner(n *InnerNode) []byte {
	buf := make([]byte, 0, bookkeeping+len(n.Prefix)+len(n.Children)*10)
	flag := byte(0)
	if len(n.Prefix) > 0 {
		flag |= flagHasPrefix
	}
	if n.IsAllTheSame() {
		flag |= flagAllTheSame
	}
	buf = append(buf, flag)
	if len(n.Prefix) > 0 {
		buf = page.EncodeWithHeader(buf, n.Prefix)
	}
	var countBuf [2]byte
	binary.BigEndian.PutUint16(countBuf[:], uint16(len(n.Children)))
	buf = append(buf, countBuf[:]...)
	for _, c := range n.Children {
		var entry [10]byte
		binary.BigEndian.PutUint16(entry[0:2], uint16(c.Label.Int16()))
		binary.BigEndian.PutUint64(entry[2:10], uint64(c.Down))
		buf = append(buf, entry[:]...)
	}
	return buf
}

// EncodeLeaf serializes n into the persisted leaf-node layout.
func EncodeLeaf(n *LeafNode) []byte {
	buf := make([]byte, 0, bookkeeping+len(n.Residual))
	flag := byte(flagIsLeaf)
	if len(n.Residual) > 0 {
		flag |= flagHasPrefix
	}
	buf = append(buf, flag)
	if len(n.Residual) > 0 {
		buf = page.EncodeWithHeader(buf, n.Residual)
	}
	var rowBuf [8]byte
	binary.BigEndian.PutUint64(rowBuf[:], uint64(n.Row))
	return append(buf, rowBuf[:]...)
}

// DecodeNode parses a persisted node page, returning either an inner node
// or a leaf node (exactly one of the two return pointers is non-nil).
// Structural violations surface as CorruptNode.
func DecodeNode(buf []byte) (inner *InnerNode, leaf *LeafNode, err error) {
	if len(buf) < 1 {
		return nil, nil, corrupt("empty page")
	}
	flag := buf[0]
	rest := buf[1:]

	var prefixOrResidual page.Key
	if flag&flagHasPrefix != 0 {
		p, n, derr := page.DecodeWithHeader(rest)
		if derr != nil {
			return nil, nil, corrupt("truncated prefix/residual: " + derr.Error())
		}
		prefixOrResidual = page.Key(p).Clone()
		rest = rest[n:]
	}

	if flag&flagIsLeaf != 0 {
		if len(rest) < 8 {
			return nil, nil, corrupt("truncated row reference")
		}
		row := RowRef(binary.BigEndian.Uint64(rest[:8]))
		return nil, &LeafNode{Residual: prefixOrResidual, Row: row}, nil
	}

	if len(rest) < 2 {
		return nil, nil, corrupt("truncated child count")
	}
	count := int(binary.BigEndian.Uint16(rest[:2]))
	rest = rest[2:]
	if len(rest) < count*10 {
		return nil, nil, corrupt("truncated child array")
	}
	children := make([]ChildSlot, count)
	for i := 0; i < count; i++ {
		entry := rest[i*10 : i*10+10]
		lbl := LabelFromInt16(int16(binary.BigEndian.Uint16(entry[0:2])))
		down := Downlink(binary.BigEndian.Uint64(entry[2:10]))
		children[i] = ChildSlot{Label: lbl, Down: down}
	}
	for i := 1; i < count; i++ {
		if !children[i-1].Label.Less(children[i].Label) {
			return nil, nil, corrupt("child labels not strictly ascending")
		}
	}
	if flag&flagAllTheSame != 0 && count != 1 {
		return nil, nil, corrupt("all-the-same flag set but child count != 1")
	}
	return &InnerNode{Prefix: prefixOrResidual, Children: children}, nil, nil
}
