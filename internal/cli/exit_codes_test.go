package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitValidationFailed, ExitCode(NewExitError(ExitValidationFailed)))
	assert.Equal(t, ExitConfigError, ExitCode(NewExitError(ExitConfigError)))
	assert.Equal(t, ExitInvalidArguments, ExitCode(NewExitError(ExitInvalidArguments)))
	assert.Equal(t, ExitValidationFailed, ExitCode(errors.New("plain error")))
}

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewExitError(ExitConfigError)
	assert.Equal(t, "exit code 2", err.Error())
}
