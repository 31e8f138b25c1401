// Released under an MIT license. See LICENSE.

// Package input provides the classified result of reading one line.
package input

// Kind is the class of a read.
type Kind int

// Read classes.
const (
	Text Kind = iota
	Interrupt
	EndOfInput
	Failure
)

// String returns the name of the Kind k. Useful for debugging.
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Interrupt:
		return "Interrupt"
	case EndOfInput:
		return "EndOfInput"
	case Failure:
		return "Failure"
	}

	return "Unknown"
}

// T (input) is the result of prompting for a line.
type T struct {
	Kind Kind
	Text string // Set when Kind is Text.
	Err  error  // Set when Kind is Failure.
}

// Line creates a Text input.
func Line(text string) T {
	return T{Kind: Text, Text: text}
}

// Interrupted creates an Interrupt input.
func Interrupted() T {
	return T{Kind: Interrupt}
}

// Ended creates an EndOfInput input.
func Ended() T {
	return T{Kind: EndOfInput}
}

// Failed creates a Failure input wrapping err.
func Failed(err error) T {
	return T{Kind: Failure, Err: err}
}
