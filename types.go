package rdlog

import "time"

// Entry is the transient record of one emitted line. It is sent to Observers
// and not retained by the Logger.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
