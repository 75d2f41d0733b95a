package lineadapter

import "sync"

const (
	defaultBufferSize = 256
	maxPooledBuffer   = 64 * 1024
)

// buffer is a reusable line buffer.
type buffer struct{ b []byte }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, defaultBufferSize)} }}

func getBuf(initCap int) *buffer {
	buf := bufPool.Get().(*buffer)
	if cap(buf.b) < initCap {
		buf.b = make([]byte, 0, initCap)
	} else {
		buf.b = buf.b[:0]
	}
	return buf
}

// putBuf drops oversized buffers so one huge message does not pin memory.
func putBuf(buf *buffer) {
	if cap(buf.b) <= maxPooledBuffer {
		bufPool.Put(buf)
	}
}
