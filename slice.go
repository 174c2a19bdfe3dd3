package byteview

import "unsafe"

// Slice returns the sub-range v[start:end] as an independent ByteView.
// A long result never copies the payload: it shares v's HPR (retaining
// it once). A short result - even
// one sliced from a long-form v - is copied into the new ByteView's
// inline tail and never touches v's refcount at all; downgrading to
// inline is never itself a reason to retain the parent's HPR.
func (v ByteView) Slice(start, end int) ByteView {
	if start < 0 || end < start || end > v.Len() {
		panic("byteview: slice bounds out of range")
	}
	n := end - start

	var out ByteView
	out.length = uint32(n)

	if v.isInline() {
		// Inline source: always copies into the result's own tail,
		// whatever the requested window's size - there is no HPR to
		// share.
		copy(out.tail[:], v.tail[start:end])
		return out
	}

	if n <= InlineMax {
		// Long source, short enough result: downgrade to inline.
		// The parent's refcount is untouched - this copy is a leaf
		// with no remaining tie to the HPR.
		copy(out.tail[:], v.Bytes()[start:end])
		return out
	}

	// Long source, long result: share the HPR, retaining it once, keep
	// the parent's base pointer, and recompute the window's data
	// pointer and prefix.
	header := v.heapHeader()
	retain(header)

	lf := v.longFormPtr()
	outLF := out.longFormPtr()
	newData := unsafe.Add(loadPtr(&lf.data), start)
	storePtr(&outLF.base, loadPtr(&lf.base))
	storePtr(&outLF.data, newData)
	copy(outLF.prefix[:], unsafe.Slice((*byte)(newData), prefixSize))

	return out
}

// StartsWith reports whether v's payload begins with needle. It first
// compares v's cached prefix against the lead bytes of needle before
// ever materializing the full payload slice, so the common
// longer-than-prefix case short-circuits without touching the HPR.
func (v ByteView) StartsWith(needle []byte) bool {
	if len(needle) > v.Len() {
		return false
	}
	if len(needle) <= prefixSize {
		return bytesEqual(v.Prefix()[:len(needle)], needle)
	}
	if !bytesEqual(v.Prefix(), needle[:prefixSize]) {
		return false
	}
	return bytesEqual(v.Bytes()[:len(needle)], needle)
}
