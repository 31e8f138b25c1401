package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	o := Success("3")

	assert.False(t, o.Failed())
	assert.Equal(t, "3", o.String())
}

func TestFailure(t *testing.T) {
	o := Failure("car: empty list")

	assert.True(t, o.Failed())
	assert.Equal(t, "error: car: empty list", o.String())
}
