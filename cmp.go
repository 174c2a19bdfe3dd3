package byteview

import (
	"bytes"
	"encoding/binary"
)

// Equal reports whether v and other have identical payloads. Before
// comparing bytes it checks length, then - for payloads of at least 8
// bytes - a single 8-byte word load from the start of each payload:
// most unequal byte strings diverge within their first word, so this
// rejects the common mismatching case without ever calling into
// bytes.Equal. The word is read with encoding/binary rather than a
// reinterpret cast, since a []byte's backing array carries no
// alignment guarantee beyond 1.
func (v ByteView) Equal(other ByteView) bool {
	if v.Len() != other.Len() {
		return false
	}
	if v.Len() == 0 {
		return true
	}
	if v.Len() >= 8 {
		a := v.Bytes()
		b := other.Bytes()
		aw := binary.NativeEndian.Uint64(a[:8])
		bw := binary.NativeEndian.Uint64(b[:8])
		if aw != bw {
			return false
		}
	}
	return bytesEqual(v.Bytes(), other.Bytes())
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater
// than other, ordering lexicographically by byte value. It compares
// cached prefixes first and only falls through to a full byte
// comparison when the prefixes tie and at least one payload is longer
// than the prefix.
func (v ByteView) Compare(other ByteView) int {
	vp, op := v.Prefix(), other.Prefix()
	if c := bytes.Compare(vp, op); c != 0 {
		return c
	}
	if v.Len() <= prefixSize && other.Len() <= prefixSize {
		if v.Len() == other.Len() {
			return 0
		}
		if v.Len() < other.Len() {
			return -1
		}
		return 1
	}
	return bytes.Compare(v.Bytes(), other.Bytes())
}

func bytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
