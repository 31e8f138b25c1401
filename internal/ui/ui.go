// Released under an MIT license. See LICENSE.

// Package ui provides the line editor for interactive tl sessions.
package ui

import (
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/tl/internal/type/input"
)

// T (ui) is a liner-backed line editor.
type T struct {
	*liner.State
}

type ui = T

// New creates a line editor. Ctrl-C aborts the current prompt. Tab
// completes any of names.
func New(names []string) *ui {
	cli := liner.NewLiner()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(names))

	return &ui{State: cli}
}

// Read prompts for a line and classifies the outcome.
func (u *ui) Read(prompt string) input.T {
	return Classify(u.Prompt(prompt))
}

// Classify maps the result of a prompt to an input.
func Classify(line string, err error) input.T {
	switch {
	case err == nil:
		return input.Line(line)
	case errors.Is(err, liner.ErrPromptAborted):
		return input.Interrupted()
	case errors.Is(err, io.EOF):
		return input.Ended()
	}

	return input.Failed(err)
}

// Completer returns a word completer that offers the names starting with
// the word before the cursor. The cursor position pos counts runes.
func Completer(names []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		r := []rune(line)
		head = string(r[:pos])
		tail = string(r[pos:])

		start := strings.LastIndexAny(head, "()' \t") + 1
		word := head[start:]
		head = head[:start]

		if word == "" {
			return head, nil, tail
		}

		for _, name := range names {
			if strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}

		return head, completions, tail
	}
}
