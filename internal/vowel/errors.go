package vowel

import "fmt"

// ScanError is reported when the scanner finds a character sequence that
// does not make up a valid token. Scanning continues after it is reported.
type ScanError struct {
	line    int
	column  int
	message string
}

func newScanError(line, column int, message string) error {
	return &ScanError{line, column, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("Error: [Line %d, Column %d]: %s", err.line, err.column, err.message)
}

// ParseError wraps the error message returned by the parser with the token
// where the error occured.
type ParseError struct {
	token   *Token
	message string
}

func newParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	return formatTokenError(err.token, err.message)
}

// Token returns the offending token
func (err *ParseError) Token() *Token {
	return err.token
}

// ResolveError has the same shape as ParseError, it is produced by the static
// analysis of the syntax tree.
type ResolveError struct {
	token   *Token
	message string
}

func newResolveError(token *Token, message string) error {
	return &ResolveError{token, message}
}

func (err *ResolveError) Error() string {
	return formatTokenError(err.token, err.message)
}

// Token returns the offending token
func (err *ResolveError) Token() *Token {
	return err.token
}

// RuntimeError is produced while evaluating the program. The token is the
// closest piece of syntax to the failing operation.
type RuntimeError struct {
	token   *Token
	message string
}

func newRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return formatTokenError(err.token, err.message)
}

// Message returns the error message without location information
func (err *RuntimeError) Message() string {
	return err.message
}

func formatTokenError(token *Token, message string) string {
	if token == nil {
		return message
	}
	return fmt.Sprintf("Error: [Line %d, Column %d]: %s", token.Line, token.Column, message)
}
