package trie

import (
	"testing"

	"github.com/kmerindex/spgkmer/internal/page"
)

func TestEncodeDecodeLeafRoundTrip(t *testing.T) {
	leaf := NewLeaf(page.Key("ACGT"), 99)
	buf := EncodeLeaf(leaf)
	inner, decoded, err := DecodeNode(buf)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if inner != nil {
		t.Fatalf("expected nil inner for leaf page")
	}
	if decoded == nil || decoded.Row != 99 || string(decoded.Residual) != "ACGT" {
		t.Fatalf("decoded leaf = %+v, want residual ACGT row 99", decoded)
	}
}

func TestEncodeDecodeLeafEmptyResidual(t *testing.T) {
	leaf := NewLeaf(nil, 7)
	buf := EncodeLeaf(leaf)
	_, decoded, err := DecodeNode(buf)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if len(decoded.Residual) != 0 {
		t.Fatalf("expected empty residual, got %q", decoded.Residual)
	}
	if decoded.Row != 7 {
		t.Fatalf("row = %d, want 7", decoded.Row)
	}
}

func TestEncodeDecodeInnerRoundTrip(t *testing.T) {
	n := mustInner(t, page.Key("AC"), []ChildSlot{
		{Label: ByteLabel('G'), Down: 11},
		{Label: Terminator, Down: 22},
	})
	buf := EncodeInner(n)
	decoded, leaf, err := DecodeNode(buf)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if leaf != nil {
		t.Fatalf("expected nil leaf for inner page")
	}
	if string(decoded.Prefix) != "AC" {
		t.Fatalf("prefix = %q, want AC", decoded.Prefix)
	}
	if len(decoded.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(decoded.Children))
	}
	if !decoded.Children[0].Label.Equal(Terminator) || decoded.Children[0].Down != 22 {
		t.Fatalf("first child = %+v, want Terminator/22", decoded.Children[0])
	}
	if !decoded.Children[1].Label.Equal(ByteLabel('G')) || decoded.Children[1].Down != 11 {
		t.Fatalf("second child = %+v, want G/11", decoded.Children[1])
	}
}

func TestEncodeDecodeInnerNoPrefix(t *testing.T) {
	n := mustInner(t, nil, []ChildSlot{{Label: ByteLabel('A'), Down: 1}})
	buf := EncodeInner(n)
	decoded, _, err := DecodeNode(buf)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if len(decoded.Prefix) != 0 {
		t.Fatalf("expected empty prefix, got %q", decoded.Prefix)
	}
}

func TestEncodeDecodeAllTheSame(t *testing.T) {
	n := mustInner(t, page.Key("AC"), []ChildSlot{{Label: AllTheSame, Down: 5}})
	buf := EncodeInner(n)
	decoded, _, err := DecodeNode(buf)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if !decoded.IsAllTheSame() {
		t.Fatalf("expected decoded node to report IsAllTheSame")
	}
}

func TestDecodeNodeRejectsEmptyBuffer(t *testing.T) {
	if _, _, err := DecodeNode(nil); err == nil {
		t.Fatalf("expected CorruptNode for empty buffer")
	}
}

func TestDecodeNodeRejectsTruncatedRow(t *testing.T) {
	buf := EncodeLeaf(NewLeaf(page.Key("A"), 1))
	if _, _, err := DecodeNode(buf[:len(buf)-2]); err == nil {
		t.Fatalf("expected CorruptNode for truncated row reference")
	}
}

func TestDecodeNodeRejectsTruncatedChildArray(t *testing.T) {
	n := mustInner(t, nil, []ChildSlot{{Label: ByteLabel('A'), Down: 1}, {Label: ByteLabel('C'), Down: 2}})
	buf := EncodeInner(n)
	if _, _, err := DecodeNode(buf[:len(buf)-5]); err == nil {
		t.Fatalf("expected CorruptNode for truncated child array")
	}
}

func TestDecodeNodeRejectsOutOfOrderLabels(t *testing.T) {
	// Hand-build a buffer with two children in descending label order,
	// which NewInner/EncodeInner would never produce but DecodeNode must
	// still reject defensively.
	n := mustInner(t, nil, []ChildSlot{{Label: ByteLabel('A'), Down: 1}, {Label: ByteLabel('C'), Down: 2}})
	buf := EncodeInner(n)
	// swap the two 10-byte child entries (layout: 1 flag + 2 count bytes, then entries)
	first := append([]byte{}, buf[3:13]...)
	second := append([]byte{}, buf[13:23]...)
	copy(buf[3:13], second)
	copy(buf[13:23], first)
	if _, _, err := DecodeNode(buf); err == nil {
		t.Fatalf("expected CorruptNode for out-of-order labels")
	}
}

func TestDecodeNodeRejectsBadAllTheSameFlag(t *testing.T) {
	n := mustInner(t, nil, []ChildSlot{{Label: ByteLabel('A'), Down: 1}, {Label: ByteLabel('C'), Down: 2}})
	buf := EncodeInner(n)
	buf[0] |= flagAllTheSame
	if _, _, err := DecodeNode(buf); err == nil {
		t.Fatalf("expected CorruptNode when all-the-same flag set with 2 children")
	}
}
