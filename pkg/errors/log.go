package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including instance ids and timestamps.
	Verbose bool
}

// HandleError logs a VeltError to stderr.
func (h *LogHandler) HandleError(err *VeltError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[velt error] %s [%s]", err.Op, err.Kind)
		if err.Instance != "" {
			fmt.Fprintf(os.Stderr, " instance=%s", err.Instance)
		}
		fmt.Fprintf(os.Stderr, " at=%s", err.Timestamp.Format("15:04:05.000"))
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[velt error] %s: %v\n", err.Op, err.Err)
	}
}
