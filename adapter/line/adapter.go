package lineadapter

import (
	"io"
	"os"
	"time"

	"github.com/trickstertwo/rdlog"
)

// Adapter is the built-in backend. It renders the canonical line
//
//	Log Level: <code>; Message: <msg>
//
// into a pooled buffer and hands it to the sink in a single Write made
// through rdlog.LockedWriter.
type Adapter struct {
	w    io.Writer // always a rdlog.LockedWriter
	opts Options

	st *stats
}

// New creates an Adapter writing to w (os.Stdout when nil).
func New(w io.Writer, opts Options) *Adapter {
	if w == nil {
		w = os.Stdout
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	return &Adapter{
		w:    rdlog.LockedWriter(w),
		opts: opts,
		st:   &stats{},
	}
}

// Stats returns a snapshot of internal counters.
func (a *Adapter) Stats() StatsSnapshot { return a.st.snapshot() }

// ResetStats resets internal counters.
func (a *Adapter) ResetStats() { a.st.reset() }

// Log writes one line. The timestamp is not part of the line format.
// Write errors are counted and passed to Options.ErrorHandler when set;
// they never reach the caller.
func (a *Adapter) Log(level rdlog.Level, msg string, _ time.Time) {
	buf := getBuf(a.opts.BufferSize)
	defer putBuf(buf)

	buf.b = rdlog.AppendLine(buf.b, level, msg)

	n, err := a.w.Write(buf.b)
	if err != nil {
		a.st.writeErrors.Add(1)
		if a.opts.ErrorHandler != nil {
			a.opts.ErrorHandler(err)
		}
		return
	}
	a.st.lines.Add(1)
	a.st.bytes.Add(uint64(n))
}
