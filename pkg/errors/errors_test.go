// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "plan not found",
			wantStr: "[NOT_FOUND] plan not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "unknown status kind",
			wantStr: "[INVALID_INPUT] unknown status kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPlanInvalid, "entry %d: unknown action %q", 3, "copy")
	assert.Equal(t, `entry 3: unknown action "copy"`, err.Message)
	assert.Equal(t, errors.ErrPlanInvalid, err.Code)
}

func TestWrap(t *testing.T) {
	baseErr := fs.ErrPermission

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileAccess, "cannot check existence")
		require.NotNil(t, err)

		assert.Equal(t, errors.ErrFileAccess, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_ACCESS] cannot check existence: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrConfigLoad, "failed to load %s", "gendry.toml")
		assert.Equal(t, "failed to load gendry.toml", err.Message)
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "denied").
		WithDetail("path", "/out/api.go").
		WithDetails(map[string]interface{}{"op": "stat", "attempt": 1})

	assert.Equal(t, "/out/api.go", err.Details["path"])
	assert.Equal(t, "stat", err.Details["op"])
	assert.Equal(t, 1, err.Details["attempt"])

	var zero errors.GendryError
	zero.WithDetail("k", "v")
	assert.Equal(t, "v", zero.Details["k"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(fmt.Errorf("outer: %w", err1), err2))
}

func TestCodeHelpers(t *testing.T) {
	wrapped := fmt.Errorf("replay: %w",
		errors.Wrap(fs.ErrPermission, errors.ErrFileAccess, "denied").WithDetail("path", "/x"))

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrFileAccess))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrInternal))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrFileAccess))

	assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	assert.Equal(t, "/x", errors.GetErrorDetails(wrapped)["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
