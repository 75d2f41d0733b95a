package lineadapter

// ErrorHandler receives sink write errors. It is opt-in: with no handler,
// failed writes are dropped silently.
type ErrorHandler func(error)

// Options configures the adapter behavior
type Options struct {
	ErrorHandler ErrorHandler

	// Initial capacity of the pooled line buffer.
	// Defaults to 256 when <= 0
	BufferSize int
}
