package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrWebMD/hamurai-name-server/internal/pool"
)

func TestPool_ConstructorCalled(t *testing.T) {
	callCount := 0
	p := pool.New(func() int {
		callCount++
		return callCount
	})

	assert.Equal(t, 1, p.Get())
	assert.Equal(t, 2, p.Get())
	assert.Equal(t, 2, callCount)
}

func TestBuffers_GetReturnsFullLength(t *testing.T) {
	bufs := pool.NewBuffers(512)
	assert.Equal(t, 512, bufs.Size())

	buf := bufs.Get()
	require.NotNil(t, buf)
	assert.Len(t, *buf, 512)

	// A buffer sliced down by a reader comes back at full length.
	*buf = (*buf)[:20]
	bufs.Put(buf)
	again := bufs.Get()
	assert.Len(t, *again, 512)
}

func TestBuffers_PutIgnoresForeignBuffers(t *testing.T) {
	bufs := pool.NewBuffers(512)
	small := make([]byte, 16)

	assert.NotPanics(t, func() {
		bufs.Put(nil)
		bufs.Put(&small)
	})
	assert.Len(t, *bufs.Get(), 512)
}

func TestBuffers_ConcurrentAccess(t *testing.T) {
	bufs := pool.NewBuffers(512)

	var wg sync.WaitGroup
	const goroutines = 50
	const iterations = 500

	for range goroutines {
		wg.Go(func() {
			for range iterations {
				buf := bufs.Get()
				(*buf)[0] = 1
				bufs.Put(buf)
			}
		})
	}

	wg.Wait()
}

func BenchmarkBuffers_GetPut(b *testing.B) {
	bufs := pool.NewBuffers(512)
	for b.Loop() {
		buf := bufs.Get()
		bufs.Put(buf)
	}
}
