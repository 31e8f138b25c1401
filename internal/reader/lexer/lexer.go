// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for tl.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/tl/internal/reader/token"
	"github.com/michaelmacinnis/tl/internal/type/errpos"
	"github.com/michaelmacinnis/tl/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	saved action // Escaped action.
	state action // Current action.

	cursor loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.

	err    *errpos.T
	tokens []*token.T
}

// New creates a new T for text.
func New(text string) *T {
	return &T{
		bytes: text,
		state: skipWhitespace,
	}
}

// Scan returns every token in text or the first lexical error.
func Scan(text string) ([]*token.T, error) {
	l := New(text)

	for l.state != nil {
		l.state = l.state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.cursor.Line++
		l.cursor.Char = 0
	} else {
		l.cursor.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) error(format string, args ...interface{}) action {
	l.err = errpos.New(l.source, format, args...)
	return nil
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped
	return a
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)
	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil
	return resumed
}

func (l *T) skip() {
	l.first = l.index
	l.source = l.cursor
}

// T states.

func escapeNextCharacter(l *T) action {
	r := l.next()

	if r == eof {
		return l.error("unterminated string")
	}

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof, '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ';':
			s := l.Text()
			l.emit(classify(s), s)
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return l.error("unterminated string")
		case '"':
			l.emit(token.String, l.Text())
			return skipWhitespace
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.accept(r, w)
			l.skip()
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		l.skip()

		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
		case ';':
			return skipComment
		case '(', ')', '\'':
			l.accept(r, w)
			l.emit(r, l.Text())
		case '"':
			l.accept(r, w)
			return scanString
		default:
			return scanAtom
		}
	}
}

// Helper functions (well, function).

// classify decides if an atom is a number. Malformed numbers like "12ab"
// are still classified as integers so that the parser can reject them.
func classify(s string) token.Class {
	i := 0
	if len(s) > 1 && (s[0] == '-' || s[0] == '+') {
		i = 1
	}

	if s[i] >= '0' && s[i] <= '9' {
		return token.Integer
	}

	return token.Symbol
}
