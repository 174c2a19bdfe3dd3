package byteview

import (
	"sync"
	"unsafe"

	"go.uber.org/atomic"
)

// heapHeader is the fixed-size header stored at the start of every heap
// payload region (HPR). It holds the single piece of mutable shared state
// in this package: the atomic reference count. No other metadata - no
// length, no capacity - lives in the HPR; those belong to each ByteView's
// view into it.
type heapHeader struct {
	refCount atomic.Uint64
}

// headerSize is sizeof(heapHeader), i.e. the byte offset from an HPR's
// base address to its first payload byte.
const headerSize = int(unsafe.Sizeof(heapHeader{}))

// liveRegions keeps every live HPR's backing array reachable for the Go
// garbage collector, independent of whatever raw unsafe.Pointer bit
// pattern a ByteView happens to be carrying in its tail.
//
// ByteView packs the HPR base pointer and the view's data pointer into
// the same bytes a short inline payload would otherwise occupy (see
// byteview.go's longForm), so the GC's type-directed scanner can't be
// trusted to recognize them as pointers when the view is inline. This
// map is the keep-alive root instead: newHeapRegion registers the
// backing []byte under its base address, and release removes it once
// the refcount reaches zero - at which point the array becomes
// unreachable and ordinary GC reclaims it, in place of an explicit
// free call.
var liveRegions sync.Map // map[uintptr][]byte

// newHeapRegion allocates a fresh HPR sized to hold n payload bytes, sets
// its refcount to 1, and returns a pointer to its header. The payload
// bytes are zeroed by Go's allocator; callers that want the bytes
// considered logically uninitialized still get zeroed memory (see
// NewUninit).
func newHeapRegion(n int) *heapHeader {
	buf := make([]byte, headerSize+n)

	base := unsafe.Pointer(&buf[0])
	header := (*heapHeader)(base)
	header.refCount.Store(1)

	liveRegions.Store(uintptr(base), buf)

	logger.Debugw("allocated heap payload region", "bytes", n)

	return header
}

// payloadStart returns a pointer to the first byte following header.
func payloadStart(header *heapHeader) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(header), headerSize)
}

// retain increments an HPR's refcount. Called whenever a new ByteView
// starts sharing an existing long-form allocation (full clone, or a
// subslice long enough to stay long-form).
func retain(header *heapHeader) {
	rc := header.refCount.Inc()
	debugAssert(rc != 0, "refcount overflow on retain")
}

// release decrements an HPR's refcount and frees the backing allocation
// once the last view of it is gone.
func release(header *heapHeader) {
	if header.refCount.Dec() == 0 {
		logger.Debugw("releasing heap payload region")
		liveRegions.Delete(uintptr(unsafe.Pointer(header)))
	}
}

func loadRefCount(header *heapHeader) uint64 {
	return header.refCount.Load()
}
