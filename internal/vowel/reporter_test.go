package vowel

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard, true)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out, true)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendRuntimeError(t *testing.T) {
	assert := assert.New(t)
	err := newRuntimeError(NewToken(MINUS, "-", nil, 2, 7), "Operand of '-' must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out, true)
	r.Report(err)

	assert.Equal("Error: [Line 2, Column 7]: Operand of '-' must be a number.\n", out.String())
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := newScanError(1, 3, "Unexpected character '#'.")
	err2 := newParseError(tok(SEMICOLON, ";"), "Expect expression.")
	err3 := newRuntimeError(tok(SLASH, "/"), "Division by zero.")

	var out strings.Builder
	r := NewSimpleReporter(&out, true)
	r.Report(err1)
	r.Report(err2)
	r.Report(err3)

	assert.Equal(
		"Error: [Line 1, Column 3]: Unexpected character '#'.\n"+
			"Error: [Line 1, Column 1]: Expect expression.\n"+
			"Error: [Line 1, Column 1]: Division by zero.\n",
		out.String(),
	)
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterWarnings(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out, true)
	r.Warn("careful")
	assert.Equal("Warning: careful\n", out.String())
	assert.False(r.HadError())

	out.Reset()
	r = NewSimpleReporter(&out, false)
	r.Warn("careful")
	assert.Empty(out.String())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := newRuntimeError(tok(MINUS, "-"), "Operand of '-' must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out, true)
	r.Report(err1)
	r.Report(err2)

	r.Reset()
	assert.False(r.HadRuntimeError())
	assert.False(r.HadError())
}

func TestRuntimeErrorWithoutToken(t *testing.T) {
	assert := assert.New(t)
	err := newRuntimeError(nil, "boom")

	assert.Equal("boom", err.Error())
	var runtimeErr *RuntimeError
	if assert.ErrorAs(err, &runtimeErr) {
		assert.Equal("boom", runtimeErr.Message())
	}
}
