package byteview

// MutatorHandle grants temporary, exclusive write access to a
// ByteView's payload bytes, obtained through TryMutate. Closing it
// refreshes the view's cached prefix so later Prefix/Compare/
// StartsWith calls see whatever the mutation wrote.
type MutatorHandle struct {
	v      *ByteView
	closed bool
}

// TryMutate returns a MutatorHandle over v's payload if v is the sole
// owner of its storage - refcount 1 for a long-form v, or always for
// an inline v, since an inline payload is never shared. It reports
// false, with no handle, if v shares a heap payload region with any
// other live ByteView; mutating shared storage in place would be
// visible to those other views, which would violate this package's
// immutability contract.
func (v *ByteView) TryMutate() (*MutatorHandle, bool) {
	if !v.isInline() && loadRefCount(v.heapHeader()) != 1 {
		return nil, false
	}
	return &MutatorHandle{v: v}, true
}

// Bytes returns the mutable payload guarded by h. Writing past Len()
// bytes is not possible through this slice - its length and capacity
// are both v's length.
func (h *MutatorHandle) Bytes() []byte {
	if h.closed {
		panic("byteview: use of MutatorHandle after Close")
	}
	v := h.v
	if v.isInline() {
		// Slice v's own tail through the pointer; ByteView.Bytes has a
		// value receiver and would hand back a copy's tail instead.
		return v.tail[:v.length:v.length]
	}
	return v.Bytes()
}

// Close ends the mutation window, recomputing v's cached prefix from
// whatever bytes the caller wrote. It is safe to call Close more than
// once; only the first call has an effect.
func (h *MutatorHandle) Close() {
	if h.closed {
		return
	}
	h.closed = true

	v := h.v
	if v.isInline() {
		// The inline tail IS the payload; there is no separate
		// prefix cache to refresh.
		return
	}
	lf := v.longFormPtr()
	copy(lf.prefix[:], v.Bytes()[:prefixSize])
}
