package rdlog

import (
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// blackhole variables prevent compiler from optimizing away code paths.
var (
	bhT   time.Time
	bhLen int
)

type nopAdapter struct{}

func (nopAdapter) Log(level Level, msg string, at time.Time) {
	// Touch inputs to avoid elimination; do not allocate.
	bhT = at
	bhLen = len(msg) + int(level)
}

func newBenchLogger(minLevel Level) *Logger {
	l, err := NewBuilder().
		WithAdapter(nopAdapter{}).
		WithMinLevel(minLevel).
		Build()
	if err != nil {
		panic(err)
	}
	return l
}

func BenchmarkInfo(b *testing.B) {
	l := newBenchLogger(LevelTrace)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("ok")
	}
}

func BenchmarkFiltered(b *testing.B) {
	// Min level WARN filters INFO immediately after level check.
	l := newBenchLogger(LevelWarn)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("not-logged")
	}
}

func BenchmarkEmitf_Filtered(b *testing.B) {
	// Formatting is skipped when the level is disabled.
	l := newBenchLogger(LevelError)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Emitf(LevelDebug, "request %d took %s", i, time.Millisecond)
	}
}

func BenchmarkParallel(b *testing.B) {
	l := newBenchLogger(LevelTrace)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Debug("p")
		}
	})
}

func BenchmarkFormatLine(b *testing.B) {
	buf := make([]byte, 0, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = AppendLine(buf[:0], LevelError, "disk full")
	}
	bhLen = len(buf)
}

// Benchmark impact of xclock swap to a frozen clock (deterministic time)
// to observe any difference vs default fast-path system clock.
func BenchmarkInfo_FrozenClock(b *testing.B) {
	orig := xclock.Default()
	defer xclock.SetDefault(orig)
	xclock.SetDefault(xclock.NewFrozen(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	l := newBenchLogger(LevelTrace)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("frozen")
	}
}
