package lineadapter

import (
	"io"

	"github.com/trickstertwo/rdlog"
)

// Config is an explicit, code-first configuration for the built-in adapter.
// Use provides a single-call setup with no envs or side-imports.
type Config struct {
	// Writer is the output sink. Defaults to os.Stdout.
	Writer io.Writer

	// MinLevel is the most verbose level emitted. nil emits every level.
	MinLevel *rdlog.Level

	ErrorHandler ErrorHandler
	BufferSize   int
	Observers    []rdlog.Observer
}

// Use builds a rdlog.Logger backed by the built-in adapter with Config,
// sets it as the global logger, and returns it.
func Use(cfg Config) *rdlog.Logger {
	ad := New(cfg.Writer, Options{
		ErrorHandler: cfg.ErrorHandler,
		BufferSize:   cfg.BufferSize,
	})
	minLevel := rdlog.LevelTrace
	if cfg.MinLevel != nil {
		minLevel = *cfg.MinLevel
	}
	return rdlog.UseAdapter(ad, minLevel, cfg.Observers...)
}
