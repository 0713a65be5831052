package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("config.yaml", 4, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 4, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: config.yaml:4: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: config.yaml: permission denied", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("numbers.max", "must be greater than or equal to min", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "numbers.max", validationErr.Field)
	require.Equal(t, "validation error: numbers.max: must be greater than or equal to min", err.Error())

	bare := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", bare.Error())
}

func TestActionErrorIsOneBased(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unknown action")
	err := NewActionError(2, "jump", underlying)

	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	require.Equal(t, "jump", actionErr.Action)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, `action 3 ("jump"): unknown action`, err.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var actionErr *ActionError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, actionErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, validationErr.Unwrap())
	require.Nil(t, actionErr.Unwrap())
}
