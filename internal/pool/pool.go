// Package pool recycles per-datagram receive buffers.
package pool

import "sync"

// Pool is a typed wrapper around sync.Pool.
type Pool[T any] struct {
	internal sync.Pool
}

// New creates a Pool whose empty Get calls newFn.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	p.internal.Put(item)
}

// Buffers hands out fixed-size byte buffers. Pointers are pooled so that
// Put does not allocate a slice header.
type Buffers struct {
	size int
	p    *Pool[*[]byte]
}

// NewBuffers creates a buffer pool whose buffers are exactly size bytes long.
func NewBuffers(size int) *Buffers {
	return &Buffers{
		size: size,
		p: New(func() *[]byte {
			b := make([]byte, size)
			return &b
		}),
	}
}

// Size is the length of every buffer handed out.
func (b *Buffers) Size() int { return b.size }

// Get returns a buffer of length Size.
func (b *Buffers) Get() *[]byte {
	buf := b.p.Get()
	*buf = (*buf)[:b.size]
	return buf
}

// Put returns buf to the pool. Buffers of the wrong capacity are dropped.
func (b *Buffers) Put(buf *[]byte) {
	if buf == nil || cap(*buf) != b.size {
		return
	}
	b.p.Put(buf)
}
