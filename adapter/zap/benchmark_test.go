package zapadapter

import (
	"io"
	"testing"
	"time"

	"github.com/trickstertwo/rdlog"
)

func BenchmarkZapAdapter_Console(b *testing.B) {
	core, _ := NewCore(io.Discard, rdlog.LevelTrace)
	var a rdlog.Adapter = New(core)

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rdlog.LevelInfo, "bench", at)
	}
}

func BenchmarkZapAdapter_Filtered(b *testing.B) {
	core, _ := NewCore(io.Discard, rdlog.LevelError)
	var a rdlog.Adapter = New(core)

	at := time.Now()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rdlog.LevelDebug, "bench", at)
	}
}
