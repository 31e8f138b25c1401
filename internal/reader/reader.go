// Released under an MIT license. See LICENSE.

// Package reader encapsulates the tl lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/tl/internal/reader/expr"
	"github.com/michaelmacinnis/tl/internal/reader/lexer"
	"github.com/michaelmacinnis/tl/internal/reader/parser"
)

// Read parses text into the forms it contains. A syntax error is
// returned as an *errpos.T pointing at the offending token.
func Read(text string) ([]expr.T, error) {
	tokens, err := lexer.Scan(text)
	if err != nil {
		return nil, err
	}

	return parser.New(tokens).Parse()
}
