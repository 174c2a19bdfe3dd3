// Package pool provides an opt-in, bounded interning cache for
// byteview.ByteView values. It plays the same role for repeated byte
// strings that a blockstore's index plays for repeated content-
// addressed blocks: canonicalize construction of identical content
// into a single shared ByteView, instead of an independent allocation
// (or inline copy) per call site.
//
// Pool never changes ByteView's own semantics - it is a cache in front
// of byteview.New, nothing more.
package pool

import (
	"bytes"
	"hash/maphash"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/marvin-j97/byteview"
)

// Pool deduplicates ByteView construction from repeated byte slices,
// up to a bounded number of distinct entries. It is safe for
// concurrent use.
type Pool struct {
	cache *lru.Cache[uint64, byteview.ByteView]
	seed  maphash.Seed
}

// New returns a Pool that retains up to capacity distinct entries,
// evicting the least recently used once full.
func New(capacity int) (*Pool, error) {
	c, err := lru.New[uint64, byteview.ByteView](capacity)
	if err != nil {
		return nil, err
	}
	return &Pool{cache: c, seed: maphash.MakeSeed()}, nil
}

// Intern returns a ByteView equal to b, sharing a previously cached
// ByteView's storage if one with the same content was interned
// before, or constructing and caching a new one (via byteview.New)
// otherwise.
//
// Every ByteView returned by Intern shares its heap payload region
// with the pool's own cached copy, so it must be released with
// Release exactly like any other ByteView. The underlying LRU only
// reports whether Add evicted an entry, not which one, so an entry's
// heap payload region outlives its eviction from the pool until every
// ByteView cloned from it is also released - the pool trades a
// precisely-timed free for O(1) eviction bookkeeping.
func (p *Pool) Intern(b []byte) byteview.ByteView {
	key := p.hash(b)

	if v, ok := p.cache.Get(key); ok && bytes.Equal(v.Bytes(), b) {
		return v.Clone()
	}

	v := byteview.New(b)
	p.cache.Add(key, v.Clone())
	return v
}

// Len returns the number of distinct entries currently cached.
func (p *Pool) Len() int {
	return p.cache.Len()
}

// Purge releases every cached entry and empties the pool.
func (p *Pool) Purge() {
	for _, key := range p.cache.Keys() {
		if v, ok := p.cache.Peek(key); ok {
			v.Release()
		}
	}
	p.cache.Purge()
}

func (p *Pool) hash(b []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(p.seed)
	h.Write(b)
	return h.Sum64()
}
