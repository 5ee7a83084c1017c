// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Logf reports per-stage progress (file counts, output paths).
func Logf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}

// Warnf reports a non-fatal condition.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf reports a failure that does not stop the remaining work.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}
