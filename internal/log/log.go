// Package log wraps logrus for the fixedgen command.
package log

import (
	"io"
	"strings"

	logrus_stack "github.com/Gurpartap/logrus-stack"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
)

// F is a shorthand for structured fields.
type F = logrus.Fields

// New returns the shared logger.
func New() *logrus.Logger {
	return logrus.StandardLogger()
}

// NewEntry wraps err into an entry carrying the error text and, when err was
// wrapped with tracerr, its stack frames under "debug".
func NewEntry(err error) *logrus.Entry {
	text := tracerr.Sprint(err)
	traceText := strings.Split(text, "\n")
	if len(traceText) > 1 {
		return logrus.WithField("debug", traceText[1:]).WithField("error", err.Error())
	}
	return logrus.WithField("debug", nil).WithField("error", err.Error())
}

// WithFields returns an entry with fields attached.
func WithFields(f F) *logrus.Entry {
	return logrus.WithFields(f)
}

// SetVerbose switches between debug and info level.
func SetVerbose(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// SetJSONFormat sets log format to JSON.
func SetJSONFormat() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
}

// SetTextFormat sets log format to Text.
func SetTextFormat() {
	logrus.SetFormatter(new(logrus.TextFormatter))
}

// ShowStack appends the call stack to every entry.
// This operation cannot be undone.
func ShowStack() {
	logrus.AddHook(logrus_stack.StandardHook())
}

// SetOutput sets log output.
// If multiple writers are provided, write to all of them.
// If none is provided, do nothing.
func SetOutput(out ...io.Writer) {
	var cnt = len(out)
	if cnt > 1 {
		logrus.SetOutput(io.MultiWriter(out...))
	} else if cnt == 1 {
		logrus.SetOutput(out[0])
	}
}
