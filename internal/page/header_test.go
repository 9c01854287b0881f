package page

import (
	"bytes"
	"testing"
)

func TestHeaderRoundTripShort(t *testing.T) {
	payload := []byte("ACGTACGTACGT")
	buf := EncodeWithHeader(nil, payload)
	if len(buf) != shortHdrLen+len(payload) {
		t.Fatalf("expected short header encoding, got %d bytes for %d payload", len(buf), len(payload))
	}
	got, consumed, err := DecodeWithHeader(buf)
	if err != nil {
		t.Fatalf("DecodeWithHeader: %v", err)
	}
	if consumed != len(buf) {
		t.Fatalf("consumed = %d, want %d", consumed, len(buf))
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

func TestHeaderRoundTripLong(t *testing.T) {
	payload := bytes.Repeat([]byte{'N'}, shortMax+50)
	buf := EncodeWithHeader(nil, payload)
	if len(buf) != longHdrLen+len(payload) {
		t.Fatalf("expected long header encoding, got %d bytes for %d payload", len(buf), len(payload))
	}
	got, consumed, err := DecodeWithHeader(buf)
	if err != nil {
		t.Fatalf("DecodeWithHeader: %v", err)
	}
	if consumed != len(buf) {
		t.Fatalf("consumed = %d, want %d", consumed, len(buf))
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch")
	}
}

func TestHeaderEmptyPayload(t *testing.T) {
	buf := EncodeWithHeader(nil, nil)
	got, consumed, err := DecodeWithHeader(buf)
	if err != nil {
		t.Fatalf("DecodeWithHeader: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got %q", got)
	}
	if consumed != shortHdrLen {
		t.Fatalf("consumed = %d, want %d", consumed, shortHdrLen)
	}
}

func TestHeaderTruncated(t *testing.T) {
	if _, _, err := DecodeWithHeader(nil); err == nil {
		t.Fatalf("expected error on empty buffer")
	}
	buf := EncodeWithHeader(nil, []byte("ACGT"))
	if _, _, err := DecodeWithHeader(buf[:shortHdrLen+1]); err == nil {
		t.Fatalf("expected error on truncated short payload")
	}
}

func TestHeaderAppendsToExistingBuffer(t *testing.T) {
	dst := []byte("prefix:")
	buf := EncodeWithHeader(dst, []byte("ACGT"))
	if !bytes.HasPrefix(buf, []byte("prefix:")) {
		t.Fatalf("EncodeWithHeader must append, got %q", buf)
	}
}
