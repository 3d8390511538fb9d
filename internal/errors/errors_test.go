package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathed/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "directory not found")

	assert.Equal(t, errors.ErrNotFound, err.Code)
	assert.Equal(t, "directory not found", err.Error())
	assert.NotNil(t, err.Details)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "directory `%s` already exists", "/usr/bin")
	assert.Equal(t, "directory `/usr/bin` already exists", err.Message)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	t.Run("wraps_message", func(t *testing.T) {
		err := errors.Wrap(base, errors.ErrIO, "could not write history")
		require.NotNil(t, err)
		assert.Equal(t, "could not write history: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrIO, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrIO, "unused %d", 1))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing")
	wrapped := fmt.Errorf("outer: %w", err)

	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
		want bool
	}{
		{"direct_match", err, errors.ErrNotFound, true},
		{"wrapped_match", wrapped, errors.ErrNotFound, true},
		{"different_code", err, errors.ErrAlreadyExists, false},
		{"plain_error", stderrors.New("x"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestIsComparesCodes(t *testing.T) {
	a := errors.New(errors.ErrInvalidInput, "a")
	b := errors.New(errors.ErrInvalidInput, "b")
	c := errors.New(errors.ErrIO, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing").WithDetail("entry", "/opt/bin")

	assert.Equal(t, "/opt/bin", errors.GetErrorDetails(err)["entry"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
