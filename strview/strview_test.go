package strview_test

import (
	"testing"

	"github.com/marvin-j97/byteview/strview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndString(t *testing.T) {
	testCases := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"short", "abcdef"},
		{"exactly inline max", "01234567890123456789"},
		{"long", "abcdefhelloworldhelloworldhelloworld"},
		{"multi-byte utf8", "héllo wörld 日本語"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := strview.New(tc.s)
			defer s.Release()

			assert.Equal(t, len(tc.s), s.Len())
			assert.Equal(t, tc.s, s.String())
			assert.Equal(t, tc.s == "", s.IsEmpty())
		})
	}
}

func TestFromBytesRejectsInvalidUTF8(t *testing.T) {
	_, err := strview.FromBytes([]byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestFromBytesAcceptsValidUTF8(t *testing.T) {
	s, err := strview.FromBytes([]byte("hello"))
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, "hello", s.String())
}

func TestCompareOrdersLikeStrings(t *testing.T) {
	a := strview.New("abcdef")
	defer a.Release()
	b := strview.New("abcdefhelloworldhelloworld")
	defer b.Release()

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestSliceAndStartsWith(t *testing.T) {
	s := strview.New("hello world")
	defer s.Release()

	assert.True(t, s.StartsWith("hello"))
	assert.False(t, s.StartsWith("world"))

	sub := s.Slice(6, 11)
	defer sub.Release()
	assert.Equal(t, "world", sub.String())
}

func TestCloneSharesDetachDoesNot(t *testing.T) {
	s := strview.New("a string long enough to heap-allocate for sure")
	defer s.Release()

	c := s.Clone()
	defer c.Release()
	assert.Equal(t, uint64(2), s.ByteView().RefCount())

	d := s.Detach()
	defer d.Release()
	assert.Equal(t, uint64(1), d.ByteView().RefCount())
	assert.True(t, s.Equal(d))
}
