package session

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tl/internal/type/errpos"
	"github.com/michaelmacinnis/tl/internal/type/input"
	"github.com/michaelmacinnis/tl/internal/type/loc"
	"github.com/michaelmacinnis/tl/internal/type/outcome"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

// engine replies to each line with canned results.
type engine struct {
	lines   []string
	replies map[string][]outcome.T
	fatal   map[string]error
}

func (e *engine) Eval(line string) ([]outcome.T, error) {
	e.lines = append(e.lines, line)

	if err, ok := e.fatal[line]; ok {
		return nil, err
	}

	return e.replies[line], nil
}

// editor plays back a script of reads and keeps history in memory.
type editor struct {
	history []string
	prompts []string
	script  []input.T
	writes  int
}

func (ed *editor) AppendHistory(item string) {
	ed.history = append(ed.history, item)
}

func (ed *editor) Read(prompt string) input.T {
	ed.prompts = append(ed.prompts, prompt)

	if len(ed.script) == 0 {
		return input.Ended()
	}

	in := ed.script[0]
	ed.script = ed.script[1:]

	return in
}

func (ed *editor) ReadHistory(r io.Reader) (int, error) {
	n := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		ed.history = append(ed.history, s.Text())
		n++
	}

	return n, s.Err()
}

func (ed *editor) WriteHistory(w io.Writer) (int, error) {
	ed.writes++

	n := 0

	for _, h := range ed.history {
		if _, err := fmt.Fprintln(w, h); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

type harness struct {
	editor *editor
	engine *engine
	errors bytes.Buffer
	output bytes.Buffer
	path   string
}

func setup(t *testing.T, script ...input.T) *harness {
	t.Helper()

	return &harness{
		editor: &editor{script: script},
		engine: &engine{
			replies: map[string][]outcome.T{},
			fatal:   map[string]error{},
		},
		path: filepath.Join(t.TempDir(), "history.txt"),
	}
}

func (h *harness) session(opts ...Option) *T {
	opts = append([]Option{
		WithErrors(&h.errors),
		WithHistory(h.path),
		WithOutput(&h.output),
	}, opts...)

	return New(h.engine, h.editor, opts...)
}

func (h *harness) lines() []string {
	return strings.Split(strings.TrimRight(h.output.String(), "\n"), "\n")
}

func TestEndOfInput(t *testing.T) {
	h := setup(t)

	s := h.session()
	assert.Equal(t, Ready, s.State())

	require.NoError(t, s.Run())

	assert.Equal(t, []string{NoHistory, Hint, "CTRL-D"}, h.lines())
	assert.Equal(t, Shutdown, s.State())
	assert.Equal(t, []string{Prompt}, h.editor.prompts)
	assert.Equal(t, 1, h.editor.writes)
	assert.Empty(t, h.errors.String())

	assert.ErrorIs(t, s.Run(), ErrShutdown)
}

func TestResultsInOrder(t *testing.T) {
	h := setup(t, input.Line("(car '()) (+ 1 2)"))
	h.engine.replies["(car '()) (+ 1 2)"] = []outcome.T{
		outcome.Failure("car: empty list"),
		outcome.Success("3"),
	}

	require.NoError(t, h.session().Run())

	assert.Equal(t, []string{
		NoHistory, Hint, "error: car: empty list", "3", "CTRL-D",
	}, h.lines())
}

func TestLineFatal(t *testing.T) {
	h := setup(t, input.Line("(+ 1"), input.Line("(+ 1 2)"))
	h.engine.fatal["(+ 1"] = errpos.New(loc.T{Line: 2, Char: 5}, "unclosed '('")
	h.engine.replies["(+ 1 2)"] = []outcome.T{outcome.Success("3")}

	require.NoError(t, h.session().Run())

	assert.Equal(t, []string{
		NoHistory, Hint, "3:6: unclosed '('", "3", "CTRL-D",
	}, h.lines())
	assert.Equal(t, []string{"(+ 1", "(+ 1 2)"}, h.engine.lines)
}

func TestInterrupt(t *testing.T) {
	source := "(export double (x) (* x 2))\n"

	h := setup(t, input.Interrupted(), input.Interrupted(), input.Line("(double 2)"))
	h.engine.replies["(double 2)"] = []outcome.T{outcome.Success("4")}

	require.NoError(t, h.session(WithSource(source)).Run())

	shown := []string{"(export double (x) (* x 2))", Hint}

	expected := []string{shown[0], NoHistory, Hint}
	expected = append(expected, shown...)
	expected = append(expected, shown...)
	expected = append(expected, "4", "CTRL-D")

	assert.Equal(t, expected, h.lines())
	assert.Equal(t, []string{"(double 2)"}, h.engine.lines)
	assert.Equal(t, []string{"(double 2)"}, h.editor.history)
}

func TestSourceShownAtStart(t *testing.T) {
	h := setup(t)

	require.NoError(t, h.session(WithSource("(export one () 1)\n\n")).Run())

	assert.Equal(t, "(export one () 1)\n"+NoHistory+"\n"+Hint+"\nCTRL-D\n", h.output.String())
}

func TestInterruptWithoutSource(t *testing.T) {
	h := setup(t, input.Interrupted())

	require.NoError(t, h.session().Run())

	assert.Equal(t, []string{NoHistory, Hint, Hint, "CTRL-D"}, h.lines())
}

func TestReadFailure(t *testing.T) {
	broken := errors.New("terminal went away")

	h := setup(t, input.Line("(+ 1 2)"), input.Failed(broken), input.Line("(+ 2 3)"))
	h.engine.replies["(+ 1 2)"] = []outcome.T{outcome.Success("3")}

	s := h.session()

	err := s.Run()
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, Shutdown, s.State())

	assert.Equal(t, "Error: terminal went away\n", h.errors.String())
	assert.Equal(t, []string{NoHistory, Hint, "3"}, h.lines())
	assert.Equal(t, []string{"(+ 1 2)"}, h.engine.lines)
	assert.Equal(t, 1, h.editor.writes)
}

func TestHistoryRoundTrip(t *testing.T) {
	h := setup(t, input.Line("(+ 1 2)"), input.Line(""), input.Line("(* 2 3)"))

	require.NoError(t, h.session().Run())

	saved, err := os.ReadFile(h.path)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)\n(* 2 3)\n", string(saved))

	next := &harness{editor: &editor{}, engine: h.engine, path: h.path}

	require.NoError(t, next.session().Run())

	assert.Equal(t, []string{Hint, "CTRL-D"}, next.lines())
	assert.Equal(t, []string{"(+ 1 2)", "(* 2 3)"}, next.editor.history)
}

func TestBlankLinesInHistory(t *testing.T) {
	h := setup(t, input.Line(""), input.Line("  "), input.Line("(+ 1 2)"))
	h.engine.replies["(+ 1 2)"] = []outcome.T{outcome.Success("3")}

	require.NoError(t, h.session().Run())

	assert.Equal(t, []string{"  ", "(+ 1 2)"}, h.editor.history)
	assert.Equal(t, []string{"", "  ", "(+ 1 2)"}, h.engine.lines)
}

func TestHistorySaveFailure(t *testing.T) {
	h := setup(t)
	h.path = t.TempDir()

	require.NoError(t, h.session().Run())

	assert.Contains(t, h.errors.String(), "error: saving history:")
	assert.Equal(t, []string{Hint, "CTRL-D"}, h.lines())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Evaluating", Evaluating.String())
	assert.Equal(t, "Unknown", State(42).String())
}
