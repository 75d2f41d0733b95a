package zapadapter

import (
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/rdlog"
)

// Adapter bridges rdlog to a go.uber.org/zap core.
//
// Entries are written through zapcore.Core directly rather than a
// zap.Logger, so zap's Panic/DPanic/Fatal write hooks never run: every level
// is logged and returns.
//
// Levels map order-preserving onto zap as zapcore.Level(4 - code):
// Panic→PanicLevel, Fatal→DPanicLevel, Error→ErrorLevel, Warn→WarnLevel,
// Info→InfoLevel, Debug→DebugLevel, Trace→DebugLevel-1.
//
// SetMinLevel adjusts the core filter when a zap.AtomicLevel was provided at
// construction time; otherwise it is a no-op (rdlog filtering still applies).
type Adapter struct {
	core zapcore.Core
	al   *zap.AtomicLevel // optional, enables SetMinLevel
}

// New creates an adapter for the provided core.
func New(core zapcore.Core) *Adapter {
	if core == nil {
		core = zapcore.NewNopCore()
	}
	return &Adapter{core: core}
}

// NewWithAtomicLevel creates an adapter and wires a zap.AtomicLevel so
// SetMinLevel can adjust the core's filter.
func NewWithAtomicLevel(core zapcore.Core, al *zap.AtomicLevel) *Adapter {
	a := New(core)
	a.al = al
	return a
}

// EncoderConfig renders the rdlog line format with zap's console encoder:
// the level encoder writes "Log Level: <code>;" and "Message:", and the
// message follows after the console separator.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "", // the line format carries no timestamp
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       "\n",
		ConsoleSeparator: " ",
		EncodeLevel:      encodeLevel,
		EncodeDuration:   zapcore.StringDurationEncoder,
	}
}

// NewCore builds a console core writing the rdlog line format to w
// (os.Stdout when nil) through rdlog.LockedWriter. The returned AtomicLevel
// controls the core's filter.
func NewCore(w io.Writer, minLevel rdlog.Level) (zapcore.Core, zap.AtomicLevel) {
	if w == nil {
		w = os.Stdout
	}
	al := zap.NewAtomicLevelAt(toZapLevel(minLevel))
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(EncoderConfig()),
		zapcore.AddSync(rdlog.LockedWriter(w)),
		al,
	)
	return core, al
}

// Log emits a single entry.
func (a *Adapter) Log(level rdlog.Level, msg string, at time.Time) {
	if !level.Valid() {
		return
	}
	ent := zapcore.Entry{
		Level:   toZapLevel(level),
		Time:    at,
		Message: msg,
	}
	// Fast path: Check returns nil when the core filters the level.
	if ce := a.core.Check(ent, nil); ce != nil {
		ce.Write()
	}
}

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
func (a *Adapter) SetMinLevel(l rdlog.Level) {
	if a.al == nil || !l.Valid() {
		return
	}
	a.al.SetLevel(toZapLevel(l))
}

// Sync flushes the core.
func (a *Adapter) Sync() error { return a.core.Sync() }

func toZapLevel(l rdlog.Level) zapcore.Level {
	return zapcore.Level(4 - l.Code())
}

func fromZapLevel(l zapcore.Level) rdlog.Level {
	return rdlog.Level(4 - int(l))
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("Log Level: " + strconv.Itoa(fromZapLevel(l).Code()) + ";")
	enc.AppendString("Message:")
}
