package handler

import (
	"fmt"
	"os"
)

var (
	enableDebugLogging bool

	// DebugF and WarningF decorate the format of debug and warning lines.
	// main overrides them to add its own prefixes.
	DebugF = func(format string) string {
		return fmt.Sprintf("debug: %s\r\n", format)
	}
	WarningF = func(format string) string {
		return fmt.Sprintf("warning: %s\r\n", format)
	}
)

// EnableDebug turns on debug lines.
func EnableDebug(on bool) {
	enableDebugLogging = on
}

func debug(format string, a ...any) {
	if !enableDebugLogging {
		return
	}
	fmt.Fprintf(os.Stderr, DebugF(format), a...)
}

func warning(format string, a ...any) {
	fmt.Fprintf(os.Stderr, WarningF(format), a...)
}
