package rdlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a log severity. Lower codes are more severe.
// The numeric codes are written verbatim into every log line.
type Level int

const (
	LevelPanic Level = iota // 0
	LevelFatal              // 1
	LevelError              // 2
	LevelWarn               // 3
	LevelInfo               // 4
	LevelDebug              // 5
	LevelTrace              // 6
)

var levelNames = [...]string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}

// Levels returns all severities in code order, most severe first.
func Levels() []Level {
	return []Level{LevelPanic, LevelFatal, LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
}

// Valid reports whether l is one of the seven defined severities.
func (l Level) Valid() bool { return l >= LevelPanic && l <= LevelTrace }

// Code is the decimal severity code used in the line format.
func (l Level) Code() int { return int(l) }

// Ptr returns a pointer to a copy of l, for optional config fields.
func (l Level) Ptr() *Level { return &l }

func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLevel accepts a level name (case-insensitive, "warning" allowed)
// or its decimal code.
func ParseLevel(s string) (Level, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "warning" {
		return LevelWarn, nil
	}
	for i, name := range levelNames {
		if v == name {
			return Level(i), nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
