package byteview_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/marvin-j97/byteview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReaderInlineAndLong(t *testing.T) {
	testCases := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"inline", 10},
		{"exactly inline max", byteview.InlineMax},
		{"long", byteview.InlineMax + 1},
		{"well over inline max", 4096},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			want := bytes.Repeat([]byte{0x0f}, tc.length)
			v, err := byteview.FromReader(bytes.NewReader(want), tc.length)
			require.NoError(t, err)
			defer v.Release()

			assert.Equal(t, tc.length, v.Len())
			assert.Equal(t, want, v.Bytes())
		})
	}
}

func TestFromReaderShortReadReturnsError(t *testing.T) {
	_, err := byteview.FromReader(bytes.NewReader([]byte("short")), 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestFromReaderPropagatesUnderlyingError(t *testing.T) {
	_, err := byteview.FromReader(errReader{}, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
