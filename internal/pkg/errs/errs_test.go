package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("guest", "123")

		assert.Equal(t, "guest", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: guest with id 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("parcel", "456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: parcel with id 456 (cause: record not found)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("LOST is not a parcel status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: LOST is not a parcel status)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("size", 500, 1, 100)

		assert.Equal(t, "size", err.ParamName)
		assert.Equal(t, 500, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is out of range: size is 500, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "name", err.ParamName)
	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("guest is already checked out")

		assert.Equal(t, "guest is already checked out", err.Reason)
		assert.Equal(t, "conflict: guest is already checked out", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		err := errs.NewConflictErrorWithCause("guest has parcels", errors.New("fk violation"))
		assert.Equal(t, "conflict: guest has parcels (cause: fk violation)", err.Error())
	})
}

func TestClassification(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("name")))
		assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("status")))
		assert.True(t, errs.IsValidation(fmt.Errorf("wrapped: %w", errs.NewValueIsOutOfRangeError("page", -1, 0, 10))))
		assert.False(t, errs.IsValidation(errs.NewConflictError("nope")))
		assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("guest", "1")))
	})

	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		err := fmt.Errorf("check out: %w", errs.NewConflictError("guest has unclaimed parcels"))
		require.ErrorIs(t, err, errs.ErrConflict)

		err = fmt.Errorf("load: %w", errs.NewObjectNotFoundError("guest", "1"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("Param extracts field names", func(t *testing.T) {
		param, ok := errs.Param(fmt.Errorf("create: %w", errs.NewValueIsRequiredError("description")))
		require.True(t, ok)
		assert.Equal(t, "description", param)

		_, ok = errs.Param(errors.New("boom"))
		assert.False(t, ok)
	})
}
