package lineadapter

import (
	"io"

	"github.com/trickstertwo/rdlog"
)

// Register this adapter as the default for rdlog.Default()/New().
func init() {
	rdlog.RegisterDefaultAdapterFactory(func(w io.Writer) rdlog.Adapter {
		return New(w, Options{})
	})
}
