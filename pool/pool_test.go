package pool_test

import (
	"bytes"
	"testing"

	"github.com/marvin-j97/byteview/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternDeduplicatesIdenticalContent(t *testing.T) {
	p, err := pool.New(16)
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0x11}, 200)

	a := p.Intern(payload)
	defer a.Release()
	b := p.Intern(bytes.Clone(payload))
	defer b.Release()

	assert.True(t, a.Equal(b))
	assert.Equal(t, uint64(3), a.RefCount()) // pool's own share + a + b
	assert.Equal(t, 1, p.Len())
}

func TestInternDistinctContentGetsDistinctEntries(t *testing.T) {
	p, err := pool.New(16)
	require.NoError(t, err)

	a := p.Intern([]byte("one"))
	defer a.Release()
	b := p.Intern([]byte("two"))
	defer b.Release()

	assert.False(t, a.Equal(b))
	assert.Equal(t, 2, p.Len())
}

func TestPurgeReleasesEntries(t *testing.T) {
	p, err := pool.New(16)
	require.NoError(t, err)

	v := p.Intern(bytes.Repeat([]byte{0x12}, 200))
	defer v.Release()

	p.Purge()
	assert.Equal(t, 0, p.Len())
}
