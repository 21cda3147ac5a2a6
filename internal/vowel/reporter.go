package vowel

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	// Report records an error. Token-bearing errors are already formatted
	// with their location.
	Report(err error)
	// Warn records a non-fatal advisory.
	Warn(message string)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	warnings      bool
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a reporter that writes one line per diagnostic to
// writer. Warnings are dropped when warnings is false.
func NewSimpleReporter(writer io.Writer, warnings bool) Reporter {
	return &SimpleReporter{writer, warnings, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Warn(message string) {
	if reporter.warnings {
		fmt.Fprintf(reporter.writer, "Warning: %s\n", message)
	}
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
