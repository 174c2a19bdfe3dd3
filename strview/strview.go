// Package strview wraps byteview.ByteView in a UTF-8-checked string
// type. It is a thin, type-safe skin over ByteView - every operation
// but construction forwards straight through - not a reimplementation
// of the inlining or sharing behavior, which it inherits unchanged.
package strview

import (
	"fmt"
	"unicode/utf8"

	"github.com/marvin-j97/byteview"
)

// StrView is an immutable, UTF-8 string backed by a ByteView. It
// shares ByteView's inlining threshold and heap-sharing behavior; only
// construction differs, by validating UTF-8 up front.
type StrView struct {
	inner byteview.ByteView
}

// New copies s into a new StrView, heap-allocating only if s is longer
// than byteview.InlineMax bytes. Since s is already a Go string, its
// bytes are already valid UTF-8 by construction - no validation is
// needed here, unlike FromBytes.
func New(s string) StrView {
	return StrView{inner: byteview.New([]byte(s))}
}

// FromBytes validates that b is well-formed UTF-8 and, if so, wraps a
// copy of it in a StrView. It is the StrView analogue of ByteView's
// New, and the one place this package does work ByteView itself does
// not: validation.
func FromBytes(b []byte) (StrView, error) {
	if !utf8.Valid(b) {
		return StrView{}, fmt.Errorf("strview: invalid UTF-8")
	}
	return StrView{inner: byteview.New(b)}, nil
}

// String returns s's content as a Go string. The conversion copies
// the payload bytes into a newly allocated string.
func (s StrView) String() string {
	return string(s.inner.Bytes())
}

// Len returns the number of bytes in s.
func (s StrView) Len() int {
	return s.inner.Len()
}

// IsEmpty reports whether s has zero length.
func (s StrView) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// Slice returns s[start:end] as an independent StrView, without
// validating UTF-8 again - callers must only pass rune boundaries,
// exactly as Go's own string slicing requires.
func (s StrView) Slice(start, end int) StrView {
	return StrView{inner: s.inner.Slice(start, end)}
}

// Clone returns a new StrView with the same content as s, sharing s's
// heap payload region if s is long-form.
func (s StrView) Clone() StrView {
	return StrView{inner: s.inner.Clone()}
}

// Detach returns a new StrView that owns an independent copy of s's
// bytes, never sharing a heap payload region with s.
func (s StrView) Detach() StrView {
	return StrView{inner: s.inner.Detach()}
}

// StartsWith reports whether s's content begins with needle.
func (s StrView) StartsWith(needle string) bool {
	return s.inner.StartsWith([]byte(needle))
}

// Equal reports whether s and other have identical content.
func (s StrView) Equal(other StrView) bool {
	return s.inner.Equal(other.inner)
}

// Compare orders s and other lexicographically by byte value, which
// for valid UTF-8 agrees with Unicode codepoint order.
func (s StrView) Compare(other StrView) int {
	return s.inner.Compare(other.inner)
}

// Release relinquishes s's share of its heap payload region, if any.
// See ByteView.Release.
func (s StrView) Release() {
	s.inner.Release()
}

// ByteView returns the ByteView backing s, for callers that need raw
// byte access without a UTF-8 guarantee.
func (s StrView) ByteView() byteview.ByteView {
	return s.inner
}
