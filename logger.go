package rdlog

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

type Logger struct {
	adapter  Adapter
	minLevel Level
	clock    xclock.Clock // nil means xclock.Now(), resolved per call

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		adapter:  cfg.Adapter,
		minLevel: cfg.MinLevel,
		clock:    cfg.Clock,
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("rdlog: global logger not set. Build one and call rdlog.SetGlobal(...)")
	}
	return l
}

// MinLevel is the most verbose level this logger emits.
func (l *Logger) MinLevel() Level { return l.minLevel }

// Enabled reports whether a message at 'level' would be emitted.
// Lower codes are more severe, so a level passes when its code is at most
// MinLevel. Codes outside the seven severities are never enabled.
func (l *Logger) Enabled(level Level) bool {
	return level.Valid() && level <= l.minLevel
}

// Emit writes one line for (level, msg). It never fails from the caller's
// point of view: sink errors are left to the adapter.
func (l *Logger) Emit(level Level, msg string) { l.emit(level, msg) }

// Emitf formats with fmt.Sprintf, skipping the formatting when disabled.
func (l *Logger) Emitf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, fmt.Sprintf(format, args...))
}

// Level entry points. None of them exits the process or panics.

func (l *Logger) Panic(msg string) { l.emit(LevelPanic, msg) }
func (l *Logger) Fatal(msg string) { l.emit(LevelFatal, msg) }
func (l *Logger) Error(msg string) { l.emit(LevelError, msg) }
func (l *Logger) Warn(msg string)  { l.emit(LevelWarn, msg) }
func (l *Logger) Info(msg string)  { l.emit(LevelInfo, msg) }
func (l *Logger) Debug(msg string) { l.emit(LevelDebug, msg) }
func (l *Logger) Trace(msg string) { l.emit(LevelTrace, msg) }

// Sync flushes the adapter if it buffers; otherwise it is a no-op.
func (l *Logger) Sync() error {
	if s, ok := l.adapter.(Syncer); ok {
		return s.Sync()
	}
	return nil
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) AddObserver(o Observer) {
	if o == nil {
		return
	}
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

func (l *Logger) emit(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	// Single authoritative timestamp for adapter and observers.
	at := l.now()

	l.adapter.Log(level, msg, at)

	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return
	}
	entry := Entry{
		At:      at,
		Level:   level,
		Message: msg,
	}
	for _, o := range obs {
		o.OnLog(entry)
	}
}
