// Released under an MIT license. See LICENSE.

// Package validate formats argument count errors.
package validate

import (
	"fmt"
)

// Fixed returns an error if passed is not the expected number of
// arguments for the function called name.
func Fixed(name string, expected, passed int) error {
	if passed == expected {
		return nil
	}

	return fmt.Errorf("%s: expected %s, passed %d", name, Count(expected, "argument", "s"), passed)
}

// Count returns "n label" with the plural suffix p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
