package tensor

import "sync/atomic"

// Buffer is a reference-counted byte region shared by an owning Array and
// every view derived from it. Its length never changes after allocation.
type Buffer struct {
	data []byte
	refs atomic.Int32
}

// newBuffer allocates a zeroed buffer with one reference.
func newBuffer(size int) *Buffer {
	buf := &Buffer{data: make([]byte, size)}
	buf.refs.Store(1)
	return buf
}

// retain increments the reference count for a new view.
func (b *Buffer) retain() *Buffer {
	b.refs.Add(1)
	return b
}

// release decrements the reference count and drops the bytes at zero.
func (b *Buffer) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Refs returns the number of arrays currently referencing the buffer.
func (b *Buffer) Refs() int {
	return int(b.refs.Load())
}

// Released reports whether the last reference has been dropped.
func (b *Buffer) Released() bool {
	return b.refs.Load() <= 0
}
