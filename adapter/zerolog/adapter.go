package zerologadapter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/rdlog"
)

// Adapter bridges rdlog to rs/zerolog.
//
// Levels map one to one, ordered, as zerolog.Level(5 - code):
// Panic→PanicLevel, Fatal→FatalLevel, Error, Warn, Info, Debug, Trace.
// Entries are started with Logger.WithLevel, which never exits the process
// or panics, even for the Fatal and Panic levels.
type Adapter struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l}
}

// NewConsole returns an adapter whose zerolog logger writes the rdlog line
// format to w (os.Stdout when nil). Messages must be valid UTF-8 to come out
// byte-exact: zerolog's JSON encoder replaces invalid sequences before the
// console writer decodes them.
func NewConsole(w io.Writer) *Adapter {
	return New(zerolog.New(NewConsoleWriter(w)))
}

// NewConsoleWriter configures a zerolog.ConsoleWriter to print
//
//	Log Level: <code>; Message: <msg>
//
// with no timestamp, caller or colors. Output goes through
// rdlog.LockedWriter, one Write per line.
func NewConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	if w == nil {
		w = os.Stdout
	}
	return zerolog.ConsoleWriter{
		Out:           rdlog.LockedWriter(w),
		NoColor:       true,
		PartsOrder:    []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel:   formatLevel,
		FormatMessage: formatMessage,
	}
}

// Log emits a single entry. The timestamp is not part of the line format.
func (a *Adapter) Log(level rdlog.Level, msg string, _ time.Time) {
	if !level.Valid() {
		return
	}
	zlvl := toZerologLevel(level)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < a.l.GetLevel() {
		return
	}
	a.l.WithLevel(zlvl).Msg(msg)
}

// SetMinLevel allows rdlog.Builder to propagate min level into zerolog (optional interface).
func (a *Adapter) SetMinLevel(l rdlog.Level) {
	if !l.Valid() {
		return
	}
	a.l = a.l.Level(toZerologLevel(l))
}

func toZerologLevel(l rdlog.Level) zerolog.Level {
	return zerolog.Level(5 - l.Code())
}

func fromZerologLevel(l zerolog.Level) rdlog.Level {
	return rdlog.Level(5 - int(l))
}

// formatLevel receives the level name zerolog wrote into the event.
func formatLevel(i any) string {
	name, _ := i.(string)
	zl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return "Log Level: " + fmt.Sprint(i) + ";"
	}
	return "Log Level: " + strconv.Itoa(fromZerologLevel(zl).Code()) + ";"
}

// formatMessage handles the absent message key zerolog uses for "".
func formatMessage(i any) string {
	if i == nil {
		return "Message: "
	}
	return "Message: " + fmt.Sprint(i)
}
