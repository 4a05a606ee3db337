package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil))
	assert.Empty(t, ErrorMessage(fmt.Errorf("%w: %w", ErrStartup, errors.New("connection refused"))),
		"startup failures are already reported by the fatal notice")
	assert.Equal(t, "invalid configuration: bad threshold", ErrorMessage(errors.New("invalid configuration: bad threshold")))
}
