package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// printf prints a message with a newline, exiting if the write fails.
func printf(w io.Writer, format string, a ...interface{}) {
	if _, err := fmt.Fprintf(w, format+"\n", a...); err != nil {
		os.Exit(1)
	}
}

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgYellow).Fprint(w, "Warning: "); err != nil {
		os.Exit(1)
	}
	printf(w, format, a...)
}

// infof prints a message prefixed with a bold cyan "Info: ".
func infof(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgCyan).Fprint(w, "Info: "); err != nil {
		os.Exit(1)
	}
	printf(w, format, a...)
}
