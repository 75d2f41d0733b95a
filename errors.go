package rdlog

import "errors"

var (
	// ErrNoAdapter is returned by Builder.Build when no Adapter was set.
	ErrNoAdapter = errors.New("rdlog: no adapter configured")

	// ErrUnknownLevel is wrapped by every level parsing or validation error.
	ErrUnknownLevel = errors.New("rdlog: unknown level")
)
