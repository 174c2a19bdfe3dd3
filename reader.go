package byteview

import (
	"fmt"
	"io"
	"math"
	"unsafe"
)

// FromReader reads exactly n bytes from r and returns them as a
// ByteView, heap-allocating only if n exceeds InlineMax. The
// destination is sized up front from the already-known length n, then
// filled in a single ReadFull call rather than grown incrementally.
//
// On a short read or any other I/O error, a partially filled heap
// payload region is released before the error is returned - callers
// never observe a ByteView from a failed FromReader.
func FromReader(r io.Reader, n int) (ByteView, error) {
	if n < 0 {
		panic("byteview: negative length")
	}
	if uint64(n) > math.MaxUint32 {
		panic("byteview: length exceeds 2^32-1")
	}

	var v ByteView
	v.length = uint32(n)

	if n <= InlineMax {
		if _, err := io.ReadFull(r, v.tail[:n]); err != nil {
			return ByteView{}, fmt.Errorf("byteview: read %d bytes: %w", n, err)
		}
		return v, nil
	}

	header := newHeapRegion(n)
	payload := unsafe.Slice((*byte)(payloadStart(header)), n)

	if _, err := io.ReadFull(r, payload); err != nil {
		release(header)
		return ByteView{}, fmt.Errorf("byteview: read %d bytes: %w", n, err)
	}

	lf := v.longFormPtr()
	storePtr(&lf.base, unsafe.Pointer(header))
	storePtr(&lf.data, payloadStart(header))
	copy(lf.prefix[:], payload[:prefixSize])

	return v, nil
}
