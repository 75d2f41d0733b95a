package rdlog

import (
	"io"
	"os"
)

// defaultAdapterFactory is set by an adapter package (adapter/line) in its
// init() to avoid import cycles. Default() uses this to build a logger.
var defaultAdapterFactory func(w io.Writer) Adapter

// RegisterDefaultAdapterFactory registers the constructor used by rdlog.Default().
// Adapters should call this from init() to avoid import cycles.
// Example (in adapter/line):
//
//	func init() {
//	  rdlog.RegisterDefaultAdapterFactory(func(w io.Writer) rdlog.Adapter {
//	    return lineadapter.New(w, lineadapter.Options{})
//	  })
//	}
func RegisterDefaultAdapterFactory(f func(io.Writer) Adapter) {
	defaultAdapterFactory = f
}

// Default creates a logger using the registered adapter factory.
// It writes to os.Stdout and emits every level. Side import
// github.com/trickstertwo/rdlog/adapter/line to register the built-in
// adapter. Panics if no factory is registered.
func Default() *Logger {
	if defaultAdapterFactory == nil {
		panic("rdlog: no default adapter registered. Import adapter/line or call rdlog.RegisterDefaultAdapterFactory")
	}
	return newLogger(Config{
		Adapter:  defaultAdapterFactory(os.Stdout),
		MinLevel: LevelTrace,
	})
}

// New creates a default logger (via Default()) and sets it as global.
// It returns the global logger for convenience.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseAdapter sets the given adapter as the global logger with the provided min level.
// It builds the logger, sets it as global, and returns it. An invalid min
// level falls back to LevelTrace.
func UseAdapter(a Adapter, minLevel Level, observers ...Observer) *Logger {
	if !minLevel.Valid() {
		minLevel = LevelTrace
	}
	b := NewBuilder().
		WithAdapter(a).
		WithMinLevel(minLevel)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		// Only a nil adapter can fail here.
		panic(err)
	}
	SetGlobal(l)
	return l
}
