package rdlog

import "time"

// Adapter is the output backend Strategy. It formats one line and writes it
// to its sink. Log receives the single authoritative timestamp 'at' from the
// Logger so adapters and observers agree on when an entry happened.
// Log must not report errors to the caller.
type Adapter interface {
	Log(level Level, msg string, at time.Time)
}

// Syncer is implemented by adapters that buffer and can be flushed.
type Syncer interface {
	Sync() error
}
