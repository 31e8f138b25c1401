// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for tl.
package parser

import (
	"errors"
	"math/big"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/tl/internal/reader/expr"
	"github.com/michaelmacinnis/tl/internal/reader/token"
	"github.com/michaelmacinnis/tl/internal/type/errpos"
)

// T holds the state of the parser.
type T struct {
	ahead  int        // Index of the lookahead token.
	tokens []*token.T // Tokens to parse.
}

// New creates a new parser for tokens.
func New(tokens []*token.T) *T {
	return &T{tokens: tokens}
}

// Parse consumes all tokens and returns the forms they make up.
// It stops at the first syntax error.
func (p *T) Parse() (es []expr.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*errpos.T)
		if !ok {
			panic(r)
		}

		es, err = nil, e
	}()

	for p.peek() != nil {
		es = append(es, p.form())
	}

	return es, nil
}

func (p *T) consume() *token.T {
	t := p.peek()
	if t == nil {
		panic(errors.New("nothing to consume"))
	}

	p.ahead++

	return t
}

func (p *T) peek() *token.T {
	if p.ahead < len(p.tokens) {
		return p.tokens[p.ahead]
	}

	return nil
}

// T state functions.

// <form> ::= <list> | '\'' <form> | Integer | String | Symbol .
func (p *T) form() expr.T {
	t := p.consume()

	switch {
	case t.Is('('):
		return p.list(t)
	case t.Is(')'):
		panic(errpos.New(t.Source(), "unexpected ')'"))
	case t.Is('\''):
		if p.peek() == nil {
			panic(errpos.New(t.Source(), "expected a form after '\\''"))
		}

		return &expr.Quote{At: t.Source(), Item: p.form()}
	case t.Is(token.Integer):
		return integer(t)
	case t.Is(token.String):
		return str(t)
	}

	return symbol(t)
}

// <list> ::= '(' <form>* ')' .
func (p *T) list(open *token.T) expr.T {
	l := &expr.List{At: open.Source()}

	for {
		t := p.peek()
		if t == nil {
			panic(errpos.New(open.Source(), "unclosed '('"))
		}

		if t.Is(')') {
			p.consume()

			return l
		}

		l.Items = append(l.Items, p.form())
	}
}

// Helper functions.

func integer(t *token.T) expr.T {
	v := &big.Int{}
	if _, ok := v.SetString(t.Value(), 0); !ok {
		panic(errpos.New(t.Source(), "invalid integer literal %q", t.Value()))
	}

	return &expr.Int{At: t.Source(), Value: v}
}

func str(t *token.T) expr.T {
	text := t.Value()

	s, err := adapted.ActualBytes(text[1 : len(text)-1])
	if err != nil {
		panic(errpos.New(t.Source(), "invalid string literal: %v", err))
	}

	return &expr.Str{At: t.Source(), Value: s}
}

func symbol(t *token.T) expr.T {
	switch t.Value() {
	case "true":
		return &expr.Bool{At: t.Source(), Value: true}
	case "false":
		return &expr.Bool{At: t.Source(), Value: false}
	}

	return &expr.Sym{At: t.Source(), Name: t.Value()}
}
