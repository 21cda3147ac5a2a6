package vowel

import "strings"

type mockReporter struct {
	errors        []error
	warnings      []string
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), make([]string, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Warn(message string) {
	reporter.warnings = append(reporter.warnings, message)
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *mockReporter) messages() []string {
	msgs := make([]string, 0, len(reporter.errors))
	for _, err := range reporter.errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func tokEOF(line, column int) *Token {
	return NewToken(EOF, "", nil, line, column)
}

func tok(typ TokenType, lexeme string) *Token {
	return NewToken(typ, lexeme, nil, 1, 1)
}

// run executes src through every pass, stopping at the first pass that
// reports an error, and returns what the program printed.
func run(src string) (string, *mockReporter) {
	report := newMockReporter()
	var out strings.Builder
	runWith(NewInterpreter(&out, report, false), src, report)
	return out.String(), report
}

func runWith(in *Interpreter, src string, report *mockReporter) {
	tokens := NewScanner([]rune(src), report).Scan()
	if report.HadError() {
		return
	}
	program := NewParser(tokens, report).Parse()
	if report.HadError() {
		return
	}
	locals := NewResolver(report).Resolve(program)
	if report.HadError() {
		return
	}
	in.Interpret(program.Stmts, locals)
}

// lines splits the printed output into its lines
func lines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return []string{}
	}
	return strings.Split(out, "\n")
}
