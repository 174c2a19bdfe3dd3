package byteview

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

const (
	// prefixSize is the number of leading payload bytes cached next to
	// the length in long form. It occupies the same first tail bytes
	// as the start of an inline payload, so those bytes hold the first
	// four payload bytes regardless of form.
	prefixSize = 4

	ptrSize = int(unsafe.Sizeof(uintptr(0)))

	// InlineMax is the largest payload length stored inline rather than
	// in a heap payload region: 20 bytes on a 64-bit target, 12 on
	// 32-bit (prefixSize + two pointer-sized slots). Deriving it from
	// prefixSize and ptrSize keeps the inline tail exactly large enough
	// to also hold a long form's prefix+base+data triple, which is what
	// makes the union in longForm below safe to overlay.
	InlineMax = prefixSize + 2*ptrSize
)

// longForm is the long-form interpretation of ByteView.tail. Its size
// must equal InlineMax so it overlays the inline payload exactly -
// ByteView is a pointer-tagged variant, discriminated solely by length,
// read back out with an explicit length test on every access rather
// than a tagged enum, since Go has no native union type.
//
// base and data hold pointer values but are declared as plain byte
// arrays, not unsafe.Pointer, for two reasons: an unsafe.Pointer field
// would demand pointer alignment that prefix's 4 bytes don't leave
// room for within InlineMax (see the size guard below), and a
// pointer-typed field here would mislead Go's precise garbage
// collector into scanning it even when ByteView is inline and these
// bytes hold ordinary payload content instead of a pointer -
// liveRegions (heap.go) is this package's real GC root for long-form
// allocations, not the type system. storePtr/loadPtr move pointer
// values in and out of these arrays without relying on the arrays
// being pointer-aligned.
type longForm struct {
	prefix [prefixSize]byte
	base   [ptrSize]byte // -> heapHeader at the start of the HPR
	data   [ptrSize]byte // -> first payload byte of this view's window
}

// longForm must fit within ByteView.tail. Both comparisons are needed
// to pin the size to exactly InlineMax: a longer longForm would spill
// past the tail (and overlap ByteView.length); a shorter one would
// leave the size guard silently ineffective against a future change.
var (
	_ [InlineMax - int(unsafe.Sizeof(longForm{}))]struct{}
	_ [int(unsafe.Sizeof(longForm{})) - InlineMax]struct{}
)

// storePtr writes p's bits into dst without requiring dst to satisfy
// unsafe.Pointer's alignment - encoding/binary's native-endian codec
// does the byte-level move instead of a reinterpret cast over
// (potentially unaligned) memory.
func storePtr(dst *[ptrSize]byte, p unsafe.Pointer) {
	if ptrSize == 8 {
		binary.NativeEndian.PutUint64(dst[:], uint64(uintptr(p)))
	} else {
		binary.NativeEndian.PutUint32(dst[:], uint32(uintptr(p)))
	}
}

// loadPtr is storePtr's inverse. The resulting pointer is only valid
// to dereference because liveRegions (heap.go) keeps the region it
// points into reachable independent of this value's own type.
func loadPtr(src *[ptrSize]byte) unsafe.Pointer {
	if ptrSize == 8 {
		return unsafe.Pointer(uintptr(binary.NativeEndian.Uint64(src[:])))
	}
	return unsafe.Pointer(uintptr(binary.NativeEndian.Uint32(src[:])))
}

// ByteView is an immutable byte string that inlines payloads of
// InlineMax bytes or fewer, and otherwise shares a single heap payload
// region (HPR) with every other ByteView cloned or sliced from it.
//
// The zero value is the empty ByteView - inline, length zero, refcount
// reported as 1 - and is ready to use without construction.
//
// A ByteView obtained by New, NewSized, NewUninit, FromReader, Clone,
// Slice or Detach holds a share of an HPR (if long-form) that must be
// released exactly once with Release when the caller is done with it;
// Go has no destructor to do this automatically. Forgetting to call
// Release leaks the HPR - it stays reachable through the package's
// keep-alive table - it never causes a use-after-free.
type ByteView struct {
	// align is a zero-size marker, present only to raise this struct's
	// required alignment to that of a pointer. Without it, tail's only
	// declared alignment would be 1 (it is a byte array), so nothing
	// would guarantee that &tail is suitably aligned for longFormPtr's
	// unsafe.Pointer reinterpretation of it as a *longForm - longForm's
	// own base/data fields are plain byte arrays (see above) read and
	// written through storePtr/loadPtr precisely so they don't need
	// that alignment themselves, but the longForm value as a whole is
	// still reached by casting &tail's address, and that cast is only
	// well-defined if &tail is already pointer-aligned - the same class
	// of alignment hazard sync/atomic's docs describe for 64-bit fields
	// on 32-bit platforms, solved the same way: a zero-size field whose
	// type carries the alignment requirement that actually matters.
	align  [0]unsafe.Pointer
	tail   [InlineMax]byte
	length uint32
}

// New copies b into a new ByteView, heap-allocating only if b is longer
// than InlineMax bytes.
func New(b []byte) ByteView {
	n := len(b)
	if uint64(n) > math.MaxUint32 {
		panic("byteview: length exceeds 2^32-1")
	}

	var v ByteView
	v.length = uint32(n)

	if n <= InlineMax {
		copy(v.tail[:], b)
		return v
	}

	header := newHeapRegion(n)
	payload := unsafe.Slice((*byte)(payloadStart(header)), n)
	copy(payload, b)

	lf := v.longFormPtr()
	copy(lf.prefix[:], b[:prefixSize])
	storePtr(&lf.base, unsafe.Pointer(header))
	storePtr(&lf.data, payloadStart(header))

	return v
}

// NewSized returns a zero-filled ByteView of exactly n bytes.
func NewSized(n int) ByteView {
	return New(make([]byte, n))
}

// NewUninit returns a ByteView of exactly n bytes whose content is not
// meaningful until the caller populates it through TryMutate. Go's
// allocator always zeroes fresh memory, so unlike the upstream Rust
// implementation this cannot skip the zero-fill; it is kept as a
// distinct entry point so callers can state their intent (and so a
// future, unsafe-allocator-backed implementation could take advantage
// of it) without it ever being able to observe indeterminate bytes.
func NewUninit(n int) ByteView {
	return NewSized(n)
}

func (v ByteView) isInline() bool {
	return v.length <= uint32(InlineMax)
}

// IsInline reports whether v's payload is stored inline rather than in
// a shared heap payload region.
func (v ByteView) IsInline() bool {
	return v.isInline()
}

// longFormPtr reinterprets v's tail as its long-form fields. v is taken
// by pointer only to avoid a needless copy; the returned pointer is
// never retained past the caller's use of v.
func (v *ByteView) longFormPtr() *longForm {
	return (*longForm)(unsafe.Pointer(&v.tail))
}

func (v ByteView) heapHeader() *heapHeader {
	debugAssert(!v.isInline(), "heapHeader called on an inline ByteView")
	lf := (*longForm)(unsafe.Pointer(&v.tail))
	return (*heapHeader)(loadPtr(&lf.base))
}

// Len returns the number of bytes in v.
func (v ByteView) Len() int {
	return int(v.length)
}

// IsEmpty reports whether v has zero length.
func (v ByteView) IsEmpty() bool {
	return v.length == 0
}

// Bytes returns a read-only view of v's payload. The returned slice is
// valid for as long as v (or any value sharing its HPR) is alive.
func (v ByteView) Bytes() []byte {
	if v.isInline() {
		return v.tail[:v.length:v.length]
	}
	lf := v.longFormPtr()
	return unsafe.Slice((*byte)(loadPtr(&lf.data)), v.length)
}

// Prefix returns the first min(4, Len()) bytes of v's payload. For a
// long-form v this reads the cached prefix stored alongside the data
// pointer rather than dereferencing the payload itself, which is what
// lets Compare and StartsWith decide most cases without touching the
// HPR at all.
func (v ByteView) Prefix() []byte {
	n := prefixSize
	if int(v.length) < n {
		n = int(v.length)
	}
	if v.isInline() {
		return v.tail[:n:n]
	}
	lf := v.longFormPtr()
	return lf.prefix[:n:n]
}

// RefCount returns the number of live ByteViews sharing v's heap payload
// region, or 1 if v is inline.
func (v ByteView) RefCount() uint64 {
	if v.isInline() {
		return 1
	}
	return loadRefCount(v.heapHeader())
}

// Clone returns a new ByteView with the same content as v. For a
// long-form v this shares the existing HPR (incrementing its refcount,
// see Release); it never allocates.
func (v ByteView) Clone() ByteView {
	return v.Slice(0, v.Len())
}

// Detach returns a new ByteView that owns an independent copy of v's
// bytes, never sharing an HPR with v.
func (v ByteView) Detach() ByteView {
	return New(v.Bytes())
}

// Release relinquishes this ByteView's share of its heap payload region,
// if any, freeing the region once the last share is released. It is a
// no-op for inline values. Call it exactly once per ByteView obtained
// from New, NewSized, NewUninit, FromReader, Clone, Slice or Detach.
func (v ByteView) Release() {
	if v.isInline() {
		return
	}
	release(v.heapHeader())
}

// String implements fmt.Stringer for debugging; it does not imply the
// payload is valid UTF-8 (use the strview package for text).
func (v ByteView) String() string {
	return fmt.Sprintf("%q", v.Bytes())
}
