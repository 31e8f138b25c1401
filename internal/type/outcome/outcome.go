// Released under an MIT license. See LICENSE.

// Package outcome provides the result of evaluating one expression.
package outcome

// T (outcome) is either a success message or an error message.
type T struct {
	failed  bool
	message string
}

type outcome = T

// Success creates an outcome holding the printed value of an expression.
func Success(message string) outcome {
	return outcome{message: message}
}

// Failure creates an outcome describing a runtime fault.
func Failure(message string) outcome {
	return outcome{failed: true, message: message}
}

// Failed returns true if o describes a runtime fault.
func (o outcome) Failed() bool {
	return o.failed
}

// String returns o as it is printed by the session.
func (o outcome) String() string {
	if o.failed {
		return "error: " + o.message
	}

	return o.message
}
