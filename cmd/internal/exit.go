package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed)

// Fatal will Echo the message in red and os.Exit with code 1.
// Colors are disabled automatically when stderr isn't a terminal.
func Fatal(msg string, args ...any) {
	_, _ = errColor.Fprint(os.Stderr, format(msg, args...))
	os.Exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	_, _ = fmt.Fprint(os.Stderr, format(msg, args...))
}

func format(msg string, args ...any) string {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return fmt.Sprintf(msg, args...)
}
