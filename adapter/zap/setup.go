package zapadapter

import (
	"io"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/rdlog"
)

// Config is an explicit, code-first configuration for zap + rdlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer    io.Writer    // default: os.Stdout
	MinLevel  *rdlog.Level // nil emits every level
	Observers []rdlog.Observer
}

// Use builds a zap-backed rdlog logger from Config, wires it as the global
// rdlog logger, and returns it. It binds the logger to xclock.Default() so
// frozen or offset clocks are respected in observer timestamps.
func Use(cfg Config) *rdlog.Logger {
	minLevel := rdlog.LevelTrace
	if cfg.MinLevel != nil {
		minLevel = *cfg.MinLevel
	}

	core, al := NewCore(cfg.Writer, minLevel)
	ad := NewWithAtomicLevel(core, &al)

	b := rdlog.NewBuilder().
		WithAdapter(ad).
		WithMinLevel(minLevel).
		WithClock(xclock.Default())
	for _, o := range cfg.Observers {
		b.AddObserver(o)
	}
	logger, err := b.Build()
	if err != nil {
		panic(err)
	}

	rdlog.SetGlobal(logger)
	return logger
}
