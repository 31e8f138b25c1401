// Released under an MIT license. See LICENSE.

// Package session drives the interactive read-evaluate-print loop.
//
// A session prompts for a line, evaluates it against a loaded program and
// prints one result per expression. The program is shown when the session
// starts and again on each interrupt.
// End of input, or a failure to read, saves history and ends the session.
package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/michaelmacinnis/tl/internal/system/history"
	"github.com/michaelmacinnis/tl/internal/type/input"
	"github.com/michaelmacinnis/tl/internal/type/outcome"
)

// Text printed by a session.
const (
	Hint      = "CTRL-D to exit"
	NoHistory = "No previous history."
	Prompt    = ">> "
)

// ErrShutdown is returned by Run for a session that has already ended.
var ErrShutdown = errors.New("session: already shut down")

//nolint:gochecknoglobals
var red = color.New(color.FgRed).SprintFunc()

// Evaluator evaluates one line. A non-nil error means nothing on the
// line was evaluated.
type Evaluator interface {
	Eval(line string) ([]outcome.T, error)
}

// Editor reads lines and keeps their history.
type Editor interface {
	AppendHistory(item string)
	Read(prompt string) input.T
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// T (session) is one run of the interactive loop.
type T struct {
	editor    Editor
	errors    io.Writer
	evaluator Evaluator
	history   string
	output    io.Writer
	source    string
	state     State
}

type session = T

// Option configures a session.
type Option func(*session)

// WithErrors sets where failures to read or save are reported.
func WithErrors(w io.Writer) Option {
	return func(s *session) {
		s.errors = w
	}
}

// WithHistory sets the path of the history file.
func WithHistory(path string) Option {
	return func(s *session) {
		s.history = path
	}
}

// WithOutput sets where prompts, results and notices are written.
func WithOutput(w io.Writer) Option {
	return func(s *session) {
		s.output = w
	}
}

// WithSource sets the program text shown at the start of a session and
// whenever the user interrupts.
func WithSource(text string) Option {
	return func(s *session) {
		s.source = text
	}
}

// New creates a session that reads from ed and evaluates with e.
// The program behind e has already been loaded.
func New(e Evaluator, ed Editor, opts ...Option) *session {
	s := &session{
		editor:    ed,
		errors:    os.Stderr,
		evaluator: e,
		history:   history.DefaultPath,
		output:    os.Stdout,
		state:     Ready,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run loops until the end of input or a failure to read. It returns nil
// at the end of input and the read error otherwise.
func (s *session) Run() error {
	if s.state == Shutdown {
		return ErrShutdown
	}

	s.program()
	s.load()
	s.println(Hint)

	for {
		s.state = Prompting

		in := s.editor.Read(Prompt)

		switch in.Kind {
		case input.Text:
			s.evaluate(in.Text)

		case input.Interrupt:
			s.program()
			s.println(Hint)

		case input.EndOfInput:
			s.println("CTRL-D")
			s.shutdown()

			return nil

		default:
			fmt.Fprintf(s.errors, "Error: %v\n", in.Err)
			s.shutdown()

			return in.Err
		}
	}
}

// State returns the current state of the session.
func (s *session) State() State {
	return s.state
}

func (s *session) evaluate(line string) {
	if line != "" {
		s.editor.AppendHistory(line)
	}

	s.state = Evaluating

	results, err := s.evaluator.Eval(line)

	s.state = Printing

	if err != nil {
		s.println(red(err.Error()))

		return
	}

	for _, r := range results {
		if r.Failed() {
			s.println(red(r.String()))
		} else {
			s.println(r.String())
		}
	}
}

func (s *session) load() {
	err := history.Load(s.history, s.editor.ReadHistory)
	if errors.Is(err, fs.ErrNotExist) {
		s.println(NoHistory)
	} else if err != nil {
		fmt.Fprintf(s.errors, "error: reading history: %v\n", err)
	}
}

// program shows the loaded source, if there is any.
func (s *session) program() {
	if s.source != "" {
		s.println(strings.TrimRight(s.source, "\n"))
	}
}

func (s *session) println(text string) {
	fmt.Fprintln(s.output, text)
}

func (s *session) shutdown() {
	err := history.Save(s.history, s.editor.WriteHistory)
	if err != nil {
		fmt.Fprintf(s.errors, "error: saving history: %v\n", err)
	}

	s.state = Shutdown
}
