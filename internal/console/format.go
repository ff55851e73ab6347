package console

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Level is the severity of a console message. It selects the prefix and
// color applied by Format.
type Level string

const (
	// LevelInfo is neutral progress output. No prefix.
	LevelInfo Level = "info"

	// LevelSuccess marks a completed operation.
	LevelSuccess Level = "success"

	// LevelWarn marks a non-fatal problem the run continued past.
	LevelWarn Level = "warn"

	// LevelError marks a fatal problem.
	LevelError Level = "error"
)

// Prefix formatters, fixed at init. color.Color values are immutable
// after construction; they render plain text when the stream is not a
// terminal or NO_COLOR is set.
var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Format renders a message with the prefix for its level:
//
//	info     message
//	success  ✔ message
//	warn     warning: message
//	error    error: message
//
// Format is pure — it writes nothing and touches no shared state.
func Format(level Level, message string) string {
	switch level {
	case LevelSuccess:
		return successColor.Sprint("✔") + " " + message
	case LevelWarn:
		return warnColor.Sprint("warning:") + " " + message
	case LevelError:
		return errorColor.Sprint("error:") + " " + message
	default:
		return message
	}
}

// Infof prints an info-level message to stdout.
func Infof(format string, args ...interface{}) {
	fmt.Fprintln(os.Stdout, Format(LevelInfo, fmt.Sprintf(format, args...)))
}

// Successf prints a success-level message to stdout.
func Successf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stdout, Format(LevelSuccess, fmt.Sprintf(format, args...)))
}

// Warnf prints a warning to stderr. Warnings never affect the exit code.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, Format(LevelWarn, fmt.Sprintf(format, args...)))
}

// Errorf prints an error to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, Format(LevelError, fmt.Sprintf(format, args...)))
}
