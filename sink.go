package rdlog

import (
	"io"
	"sync"
)

// sinkMu serializes every write made through a LockedWriter in the process.
var sinkMu sync.Mutex

type lockedWriter struct {
	w io.Writer
}

// LockedWriter wraps w so each Write runs under one process-wide mutex.
// Adapters write a whole line per Write, so lines from concurrent callers
// never interleave, even across loggers sharing the same sink. The mutex is
// released on every path out of Write, including a failing or panicking w.
//
// w must not log through rdlog from inside its own Write.
func LockedWriter(w io.Writer) io.Writer {
	if lw, ok := w.(*lockedWriter); ok {
		return lw
	}
	return &lockedWriter{w: w}
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	return lw.w.Write(p)
}

// Sync flushes the wrapped writer when it supports it (e.g. *os.File).
func (lw *lockedWriter) Sync() error {
	s, ok := lw.w.(interface{ Sync() error })
	if !ok {
		return nil
	}
	sinkMu.Lock()
	defer sinkMu.Unlock()
	return s.Sync()
}
