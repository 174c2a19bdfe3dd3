package byteview_test

import (
	"bytes"
	"testing"

	"github.com/marvin-j97/byteview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lengths spans the inline/long boundary (InlineMax is 20 on a 64-bit
// target): well below it, at it, and well past it.
func lengths() []int {
	return []int{0, 1, 3, 4, 5, 19, 20, 21, 24, 200}
}

func TestRoundtripConstructReadEqual(t *testing.T) {
	for _, n := range lengths() {
		n := n
		t.Run("", func(t *testing.T) {
			want := bytes.Repeat([]byte{0x42}, n)
			v := byteview.New(want)
			defer v.Release()

			assert.Equal(t, n, v.Len())
			assert.Equal(t, want, v.Bytes())
			assert.True(t, v.Equal(byteview.New(want)))
		})
	}
}

func TestRoundtripCloneAgreesWithSource(t *testing.T) {
	for _, n := range lengths() {
		n := n
		t.Run("", func(t *testing.T) {
			v := byteview.New(bytes.Repeat([]byte{0x43}, n))
			defer v.Release()

			c := v.Clone()
			defer c.Release()

			assert.True(t, v.Equal(c))
			assert.Equal(t, 0, v.Compare(c))
			assert.Equal(t, v.Len() <= byteview.InlineMax, c.IsInline())
		})
	}
}

func TestRoundtripSliceFullRangeAgreesWithSource(t *testing.T) {
	for _, n := range lengths() {
		n := n
		t.Run("", func(t *testing.T) {
			v := byteview.New(bytes.Repeat([]byte{0x44}, n))
			defer v.Release()

			s := v.Slice(0, n)
			defer s.Release()

			assert.True(t, v.Equal(s))
			assert.Equal(t, v.Bytes(), s.Bytes())
		})
	}
}

func TestRoundtripFromReaderAgreesWithNew(t *testing.T) {
	for _, n := range lengths() {
		n := n
		t.Run("", func(t *testing.T) {
			want := bytes.Repeat([]byte{0x45}, n)

			a := byteview.New(want)
			defer a.Release()

			b, err := byteview.FromReader(bytes.NewReader(want), n)
			require.NoError(t, err)
			defer b.Release()

			assert.True(t, a.Equal(b))
			assert.Equal(t, a.Prefix(), b.Prefix())
		})
	}
}

func TestRoundtripDetachIndependentFromSource(t *testing.T) {
	for _, n := range lengths() {
		n := n
		t.Run("", func(t *testing.T) {
			v := byteview.New(bytes.Repeat([]byte{0x46}, n))
			defer v.Release()

			d := v.Detach()
			defer d.Release()

			assert.True(t, v.Equal(d))
			assert.Equal(t, uint64(1), d.RefCount())
		})
	}
}
