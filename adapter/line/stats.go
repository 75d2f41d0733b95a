package lineadapter

import "sync/atomic"

type stats struct {
	lines       atomic.Uint64
	bytes       atomic.Uint64
	writeErrors atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Lines       uint64
	Bytes       uint64
	WriteErrors uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Lines:       s.lines.Load(),
		Bytes:       s.bytes.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}

func (s *stats) reset() {
	s.lines.Store(0)
	s.bytes.Store(0)
	s.writeErrors.Store(0)
}
