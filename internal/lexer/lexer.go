package lexer

import (
	"fmt"
	"strings"

	"github.com/strucware/strut/internal/token"
	"github.com/strucware/strut/internal/types"
)

// Lexer is a single-pass scanner that turns the raw text of a structural
// input file into an ordered token list. It never fails on malformed input:
// characters that fit no scan rule are skipped and reported through the
// diagnostic sink.
type Lexer struct {
	input    string
	position int
	line     int // 1-based
	column   int // 0-based, resets after every newline
	tokens   []token.Token
	sink     types.Sink
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithDiagnosticSink routes unrecognized-character diagnostics to the given
// sink. Without a sink they are silently discarded.
func WithDiagnosticSink(sink types.Sink) Option {
	return func(l *Lexer) {
		l.sink = sink
	}
}

// New returns a Lexer over the given input with fresh position state.
// A Lexer tokenizes its input once; there is no memoization, calling
// Tokenize on a fresh instance re-scans from the start.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
		tokens: make([]token.Token, 0, len(input)/4),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the entire input and returns the token list. The list is
// never empty: it always ends with exactly one zero-length EOF token
// positioned at the final offset.
func (l *Lexer) Tokenize() []token.Token {
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case c == '*' || c == '!':
			l.lexComment()

		case c == '\n' || (c == '\r' && l.peekAt(1) == '\n'):
			l.lexNewline()

		case startsNumber(c, l.peekAt(1)):
			l.lexNumber()

		case c == ',':
			l.lexPunct(token.COMMA)
		case c == '=':
			l.lexPunct(token.EQUALS)
		case c == '(':
			l.lexPunct(token.LPAREN)
		case c == ')':
			l.lexPunct(token.RPAREN)

		case isLetter(c) || c == '_':
			l.lexWord()

		case isWhitespace(c):
			// Whitespace between tokens is never materialized.
			l.advance()

		default:
			l.report(c)
			l.advance()
		}
	}

	l.tokens = append(l.tokens, token.Token{
		Kind:   token.EOF,
		Text:   "",
		Line:   l.line,
		Column: l.column,
		Start:  l.position,
		Stop:   l.position - 1,
	})
	return l.tokens
}

// lexComment consumes '*' or '!' through, but not including, the next line
// terminator and emits one COMMENT token.
func (l *Lexer) lexComment() {
	start := l.position
	startLine, startCol := l.line, l.column
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		// Stop before a '\r' that begins a "\r\n" sequence so the newline
		// token owns both characters.
		if l.input[l.position] == '\r' && l.peekAt(1) == '\n' {
			break
		}
		l.advance()
	}
	l.emit(token.COMMENT, start, startLine, startCol)
}

// lexNewline consumes "\n" or "\r\n" and emits one NEWLINE token. The line
// counter increments and the column resets as a side effect of advancing
// past the '\n'.
func (l *Lexer) lexNewline() {
	start := l.position
	startLine, startCol := l.line, l.column
	if l.input[l.position] == '\r' {
		l.advance()
	}
	l.advance() // the '\n' itself
	l.emit(token.NEWLINE, start, startLine, startCol)
}

// lexNumber scans an optional sign, digits, at most one decimal point, and
// an optional exponent. The token is FLOAT when a decimal point or exponent
// was consumed, NUMBER otherwise. Scanning stops at the first character that
// cannot extend the literal, so "1X" is NUMBER("1") followed by a word.
func (l *Lexer) lexNumber() {
	start := l.position
	startLine, startCol := l.line, l.column
	isFloat := false

	if c := l.input[l.position]; c == '+' || c == '-' {
		l.advance()
	}
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.advance()
	}
	if l.position < len(l.input) && l.input[l.position] == '.' {
		isFloat = true
		l.advance()
		for l.position < len(l.input) && isDigit(l.input[l.position]) {
			l.advance()
		}
	}
	// The exponent marker is consumed only when digits follow it, directly
	// or after a sign; "1e" stays NUMBER("1") plus a word token.
	if l.position < len(l.input) && (l.input[l.position] == 'e' || l.input[l.position] == 'E') {
		next := l.peekAt(1)
		if isDigit(next) {
			isFloat = true
			l.advance()
		} else if (next == '+' || next == '-') && isDigit(l.peekAt(2)) {
			isFloat = true
			l.advance()
			l.advance()
		}
		if isFloat {
			for l.position < len(l.input) && isDigit(l.input[l.position]) {
				l.advance()
			}
		}
	}

	kind := token.NUMBER
	if isFloat {
		kind = token.FLOAT
	}
	l.emit(kind, start, startLine, startCol)
}

func (l *Lexer) lexPunct(kind token.Kind) {
	start := l.position
	startLine, startCol := l.line, l.column
	l.advance()
	l.emit(kind, start, startLine, startCol)
}

// lexWord consumes a letter-or-underscore initial run of alphanumerics and
// classifies it against the keyword table. Keyword matching is
// case-insensitive; identifiers keep their original casing in Text.
func (l *Lexer) lexWord() {
	start := l.position
	startLine, startCol := l.line, l.column
	for l.position < len(l.input) && isWordChar(l.input[l.position]) {
		l.advance()
	}
	word := l.input[start:l.position]
	kind, _ := token.Lookup(strings.ToUpper(word))
	l.emit(kind, start, startLine, startCol)
}

func (l *Lexer) emit(kind token.Kind, start, startLine, startCol int) {
	l.tokens = append(l.tokens, token.Token{
		Kind:   kind,
		Text:   l.input[start:l.position],
		Line:   startLine,
		Column: startCol,
		Start:  start,
		Stop:   l.position - 1,
	})
}

// advance consumes one character, keeping the line/column bookkeeping in
// step: a consumed '\n' bumps the line and resets the column, everything
// else bumps the column.
func (l *Lexer) advance() {
	if l.input[l.position] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.position++
}

func (l *Lexer) peekAt(offset int) byte {
	if l.position+offset >= len(l.input) {
		return 0
	}
	return l.input[l.position+offset]
}

func (l *Lexer) report(c byte) {
	if l.sink == nil {
		return
	}
	l.sink(types.Diagnostic{
		Code:     types.CodeUnrecognizedChar,
		Severity: types.SeverityWarning,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.position,
		Message:  fmt.Sprintf("unrecognized character %q skipped", c),
	})
}

// startsNumber reports whether a numeric literal begins at a character with
// the given successor: a digit, a '.' followed by a digit, or a sign
// followed by a digit. The sign is consumed greedily even when it could be
// read as an operator between adjacent tokens.
func startsNumber(c, next byte) bool {
	if isDigit(c) {
		return true
	}
	if c == '.' && isDigit(next) {
		return true
	}
	if (c == '+' || c == '-') && isDigit(next) {
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
