package lineadapter

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/rdlog"
)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func BenchmarkLineAdapter_Short(b *testing.B) {
	a := New(discardWriter{}, Options{})
	at := time.Date(2024, 12, 31, 23, 59, 59, 1, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rdlog.LevelInfo, "ok", at)
	}
}

func BenchmarkLineAdapter_1KB(b *testing.B) {
	a := New(io.Discard, Options{})
	msg := strings.Repeat("a", 1024)
	at := time.Now()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rdlog.LevelWarn, msg, at)
	}
}

func BenchmarkLineAdapter_Parallel(b *testing.B) {
	a := New(io.Discard, Options{})
	at := time.Now()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a.Log(rdlog.LevelDebug, "p", at)
		}
	})
}
