package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"boutique/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("client", int64(123))

		assert.Equal(t, "client", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: client 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("work order", "17", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: work order, ID is: 17 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("advance paid", -5, 0, "+Inf")

		assert.Equal(t, "value is invalid: -5 is advance paid, min value is 0, max value is +Inf", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("name", errors.New("blank"))
	assert.Equal(t, "value is required: name (cause: blank)", withCause.Error())
}

func TestStatusErrors(t *testing.T) {
	t.Run("StatusIsInvalidError", func(t *testing.T) {
		err := errs.NewStatusIsInvalidError("Shipped", []string{"Order Placed", "Started"})

		assert.Equal(t, `status is invalid: "Shipped" is not one of [Order Placed, Started]`, err.Error())
		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})

	t.Run("StatusTransitionIsInvalidError", func(t *testing.T) {
		err := errs.NewStatusTransitionIsInvalidError("Delivered - Fully Paid", "Started")

		assert.Equal(t, "status transition is invalid: Delivered - Fully Paid -> Started", err.Error())
		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	})
}

func TestConflictErrors(t *testing.T) {
	dup := errs.NewObjectAlreadyExistsError("mobile number", "9876543210")
	assert.Equal(t, "object already exists: mobile number 9876543210", dup.Error())
	require.ErrorIs(t, dup, errs.ErrObjectAlreadyExists)

	deps := errs.NewObjectHasDependentsError("client", int64(4), 2)
	assert.Equal(t, "object has dependents: client 4 is referenced by 2 record(s)", deps.Error())
	require.ErrorIs(t, deps, errs.ErrObjectHasDependents)
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		validation    bool
		notFound      bool
		invalidStatus bool
		conflict      bool
	}{
		{name: "invalid", err: errs.NewValueIsInvalidError("mobile"), validation: true},
		{name: "required", err: errs.NewValueIsRequiredError("name"), validation: true},
		{name: "range", err: errs.NewValueIsOutOfRangeError("x", 1, 2, 3), validation: true},
		{name: "not found", err: errs.NewObjectNotFoundError("client", 1), notFound: true},
		{name: "status", err: errs.NewStatusIsInvalidError("x", nil), invalidStatus: true},
		{name: "transition", err: errs.NewStatusTransitionIsInvalidError("a", "b"), invalidStatus: true},
		{name: "duplicate", err: errs.NewObjectAlreadyExistsError("mobile", "1"), conflict: true},
		{name: "dependents", err: errs.NewObjectHasDependentsError("client", 1, 1), conflict: true},
		{
			name:       "joined and wrapped",
			err:        fmt.Errorf("create client: %w", errors.Join(errs.NewValueIsInvalidError("email"), errors.New("other"))),
			validation: true,
		},
		{name: "plain", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, errs.IsValidation(tt.err))
			assert.Equal(t, tt.notFound, errs.IsNotFound(tt.err))
			assert.Equal(t, tt.invalidStatus, errs.IsInvalidStatus(tt.err))
			assert.Equal(t, tt.conflict, errs.IsConflict(tt.err))
		})
	}
}
