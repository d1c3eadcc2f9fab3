package model

import "sync"

// BufferPool recycles cell buffers between generations
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get retrieves a buffer of length n from the pool. Contents are not cleared.
func (p *BufferPool) Get(n int) []Cell {
	if p == nil {
		return make([]Cell, n)
	}
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < n {
		return make([]Cell, n)
	}
	return (*buf)[:n]
}

// Put returns a buffer to the pool for reuse
func (p *BufferPool) Put(buf []Cell) {
	if p == nil || buf == nil {
		return
	}
	p.pool.Put(&buf)
}
