package vowel

import (
	"fmt"
	"strconv"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line      int
	lineStart int
	start     int
	current   int
	source    []rune
	tokens    []*Token
	reporter  Reporter
}

// NewScanner creates a new Vowel token scanner
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.lineStart = 0
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned sequence always ends with a single EOF token.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.newline()
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '{':
			scanner.addToken(LEFT_BRACE, nil)
		case '}':
			scanner.addToken(RIGHT_BRACE, nil)
		case '[':
			scanner.addToken(LEFT_SQUARE, nil)
		case ']':
			scanner.addToken(RIGHT_SQUARE, nil)
		case ',':
			scanner.addToken(COMMA, nil)
		case '.':
			scanner.addToken(DOT, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case ';':
			scanner.addToken(SEMICOLON, nil)
		case '*':
			scanner.addToken(STAR, nil)
		case '%':
			scanner.addToken(PERCENT, nil)
		case '^':
			scanner.addToken(CARET, nil)
		case '?':
			scanner.addToken(QUESTION, nil)
		case ':':
			scanner.addToken(COLON, nil)
		case '_':
			scanner.addToken(UNDER_SCORE, nil)
		case '$':
			scanner.addToken(DOLLAR, nil)
		case '&':
			scanner.addToken(AMPERSAND, nil)
		// Double character tokens
		case '!':
			if scanner.match('=') {
				scanner.addToken(BANG_EQUAL, nil)
			} else {
				scanner.addToken(BANG, nil)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQUAL_EQUAL, nil)
			} else {
				scanner.addToken(EQUAL, nil)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(LESS_EQUAL, nil)
			} else {
				scanner.addToken(LESS, nil)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(GREATER_EQUAL, nil)
			} else {
				scanner.addToken(GREATER, nil)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else {
				scanner.addToken(SLASH, nil)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isAlpha(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(newScanError(
					scanner.line,
					scanner.column(),
					fmt.Sprintf("Unexpected character '%c'.", r),
				))
			}
		}
	}
	scanner.start = scanner.current
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.line, scanner.column()),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	line, column := scanner.line, scanner.column()
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.advance() == '\n' {
			scanner.newline()
		}
	}

	if !scanner.hasNext() {
		scanner.reporter.Report(newScanError(line, column, "Unterminated string."))
		return
	}
	// consume '"'
	scanner.advance()
	// content between '"' pair
	literal := string(scanner.source[scanner.start+1 : scanner.current-1])
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(scanner.tokens, NewToken(STRING, lexeme, literal, line, column))
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: we're ignoring the error, since we have already verified that the
	// lexeme contains a valid 64-bit floating point.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType, nil)
	} else {
		scanner.addToken(IDENTIFIER, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.line, scanner.column())
	scanner.tokens = append(scanner.tokens, tok)
}

// column returns the 1-based column of the lexeme being scanned
func (scanner *Scanner) column() int {
	return scanner.start - scanner.lineStart + 1
}

// newline is called after a '\n' has been consumed
func (scanner *Scanner) newline() {
	scanner.line++
	scanner.lineStart = scanner.current
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}
