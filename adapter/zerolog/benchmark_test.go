package zerologadapter

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/rdlog"
)

func BenchmarkZerologAdapter_Console(b *testing.B) {
	var a rdlog.Adapter = NewConsole(io.Discard)
	at := time.Unix(0, 0).UTC()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rdlog.LevelInfo, "ok", at)
	}
}

// Raw JSON output isolates zerolog's own cost from the console rendering.
func BenchmarkZerologAdapter_JSONBaseline(b *testing.B) {
	var a rdlog.Adapter = New(zerolog.New(io.Discard))
	at := time.Unix(0, 0).UTC()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rdlog.LevelInfo, "ok", at)
	}
}
