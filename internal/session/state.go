// Released under an MIT license. See LICENSE.

package session

// State is a stage in the life of a session.
type State int

// Session states. A session is created Ready, cycles through Prompting,
// Evaluating and Printing, and ends in Shutdown.
const (
	Loading State = iota
	Ready
	Prompting
	Evaluating
	Printing
	Shutdown
)

// String returns the name of the State s. Useful for debugging.
func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Prompting:
		return "Prompting"
	case Evaluating:
		return "Evaluating"
	case Printing:
		return "Printing"
	case Shutdown:
		return "Shutdown"
	}

	return "Unknown"
}
