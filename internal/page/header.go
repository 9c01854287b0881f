package page

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Header encoding mirrors a classic varlena split: a 1-byte header is used
// whenever the payload is short enough (len <= shortMax), a 4-byte
// big-endian header with the top bit set otherwise. The choice is invisible to callers of
// EncodeWithHeader/DecodeWithHeader.
const (
	shortHdrLen = 1
	longHdrLen  = 4

	// shortMax is the largest payload length a 1-byte header can carry
	// (the top bit of the header byte distinguishes short from long).
	shortMax = 1<<7 - 1

	longFlag byte = 1 << 7
)

// ErrTruncatedHeader is returned when a buffer is too short to contain a
// valid header.
var ErrTruncatedHeader = errors.New("page: truncated header")

// EncodeWithHeader appends a length-prefixed encoding of payload to dst and
// returns the result.
func EncodeWithHeader(dst []byte, payload []byte) []byte {
	n := len(payload)
	if n <= shortMax {
		dst = append(dst, byte(n))
	} else {
		var hdr [longHdrLen]byte
		binary.BigEndian.PutUint32(hdr[:], uint32(n))
		hdr[0] |= longFlag
		dst = append(dst, hdr[:]...)
	}
	return append(dst, payload...)
}

// DecodeWithHeader reads a length-prefixed payload from the front of buf,
// returning the payload (a sub-slice of buf, not copied) and the number of
// bytes consumed (header + payload).
func DecodeWithHeader(buf []byte) (payload []byte, consumed int, err error) {
	if len(buf) < shortHdrLen {
		return nil, 0, errors.WithStack(ErrTruncatedHeader)
	}
	if buf[0]&longFlag == 0 {
		n := int(buf[0])
		if len(buf) < shortHdrLen+n {
			return nil, 0, errors.WithStack(ErrTruncatedHeader)
		}
		return buf[shortHdrLen : shortHdrLen+n], shortHdrLen + n, nil
	}
	if len(buf) < longHdrLen {
		return nil, 0, errors.WithStack(ErrTruncatedHeader)
	}
	var hdr [longHdrLen]byte
	copy(hdr[:], buf[:longHdrLen])
	hdr[0] &^= longFlag
	n := int(binary.BigEndian.Uint32(hdr[:]))
	if len(buf) < longHdrLen+n {
		return nil, 0, errors.WithStack(ErrTruncatedHeader)
	}
	return buf[longHdrLen : longHdrLen+n], longHdrLen + n, nil
}
