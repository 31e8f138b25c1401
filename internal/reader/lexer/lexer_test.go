package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tl/internal/reader/token"
	"github.com/michaelmacinnis/tl/internal/type/errpos"
	"github.com/michaelmacinnis/tl/internal/type/loc"
)

func TestDelimiters(t *testing.T) {
	h := setup(t)

	h.scan("(car '())",
		h.literal("("),
		h.symbol("car"),
		h.space(1),
		h.literal("'"),
		h.literal("("),
		h.literal(")"),
		h.literal(")"),
	)
}

func TestNumbers(t *testing.T) {
	h := setup(t)

	h.scan("1 -2 0x10 - +",
		h.other(token.Integer, "1"),
		h.space(1),
		h.other(token.Integer, "-2"),
		h.space(1),
		h.other(token.Integer, "0x10"),
		h.space(1),
		h.symbol("-"),
		h.space(1),
		h.symbol("+"),
	)
}

func TestMalformedNumberIsStillAnInteger(t *testing.T) {
	h := setup(t)

	h.scan("12ab",
		h.other(token.Integer, "12ab"),
	)
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.scan(`"a b" "say \"hi\""`,
		h.other(token.String, `"a b"`),
		h.space(1),
		h.other(token.String, `"say \"hi\""`),
	)
}

func TestCommentsAndNewlines(t *testing.T) {
	h := setup(t)

	h.scan("; comment\n(+ 1\n   2)",
		h.newline(),
		h.literal("("),
		h.symbol("+"),
		h.space(1),
		h.other(token.Integer, "1"),
		h.newline(),
		h.space(3),
		h.other(token.Integer, "2"),
		h.literal(")"),
	)
}

func TestUnterminatedString(t *testing.T) {
	_, err := Scan("(f\n  \"abc")
	require.Error(t, err)

	var e *errpos.T
	require.ErrorAs(t, err, &e)
	assert.Equal(t, loc.T{Line: 1, Char: 2}, e.Source())
	assert.Equal(t, "2:3: unterminated string", e.Error())
}

func TestUnterminatedEscape(t *testing.T) {
	_, err := Scan(`"abc\`)
	require.Error(t, err)
	assert.Equal(t, "1:1: unterminated string", err.Error())
}

func TestEmpty(t *testing.T) {
	tokens, err := Scan("  \n ; nothing here")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

type harness struct {
	expected []*token.T
	source   loc.T
	t        *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{t: t}
}

func (h *harness) scan(s string, tokens ...*token.T) {
	actual, err := Scan(s)
	require.NoError(h.t, err)

	expected := []*token.T{}
	for _, e := range tokens {
		if e != nil {
			expected = append(expected, e)
		}
	}

	require.Len(h.t, actual, len(expected), "tokens: %v", actual)

	for i, e := range expected {
		assert.Equal(h.t, e.String(), actual[i].String())
	}
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) newline() *token.T {
	h.source.Line++
	h.source.Char = 0

	return nil
}

func (h *harness) other(id token.Class, s string) *token.T {
	t := token.New(id, s, h.source)
	h.source.Char += len(s)

	return t
}

func (h *harness) space(n int) *token.T {
	h.source.Char += n

	return nil
}

func (h *harness) symbol(s string) *token.T {
	return h.other(token.Symbol, s)
}
