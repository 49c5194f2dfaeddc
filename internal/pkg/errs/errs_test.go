package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("personId", 42)

		assert.Equal(t, "personId", err.ParamName)
		assert.Equal(t, 42, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("row vanished")
		err := errs.NewObjectNotFoundErrorWithCause("plate", "ABC1234", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: plate, ID is: ABC1234 (cause: row vanished)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestObjectInUseError(t *testing.T) {
	err := errs.NewObjectInUseError("addressId", 7, "people")

	assert.Equal(t, "addressId", err.ParamName)
	assert.Equal(t, 7, err.ID)
	assert.Equal(t, "people", err.ReferencedBy)
	assert.Equal(t, "object is in use: addressId 7 is referenced by people", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectInUse)
}

func TestDuplicateValueError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewDuplicateValueError("cpf", "12345678900")

		assert.Equal(t, "duplicate value: cpf 12345678900 already exists", err.Error())
		require.ErrorIs(t, err, errs.ErrDuplicateValue)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unique_violation")
		err := errs.NewDuplicateValueErrorWithCause("trackingCode", "SRL1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: unique_violation)")
		require.ErrorIs(t, err, errs.ErrDuplicateValue)
	})
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("parcel", 300, 1000, 200)

	assert.InDelta(t, 300.0, err.AttemptedKG, 0.001)
	assert.InDelta(t, 1000.0, err.LimitKG, 0.001)
	assert.InDelta(t, 200.0, err.HeadroomKG, 0.001)
	assert.Equal(t,
		"capacity exceeded: parcel of 300.00kg exceeds limit of 1000.00kg, headroom is 200.00kg",
		err.Error())
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewPersistenceError("insert parcel", cause)

	assert.Equal(t, "persistence failure: insert parcel (cause: connection refused)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistence)
}

func TestSanitizeStripsNewlines(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("note", errors.New("line1\nline2"))

	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "line1 line2")
}

func TestCauseStaysClassifiable(t *testing.T) {
	capacity := errs.NewCapacityExceededError("parcel", 300, 200, 0)
	err := errs.NewValueIsInvalidErrorWithCause("parcelIds", capacity)

	// Both the outer kind and the folded-in rejection reason are visible.
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)

	var capErr *errs.CapacityExceededError
	require.ErrorAs(t, error(err), &capErr)
	assert.InDelta(t, 200.0, capErr.LimitKG, 0.001)
}

func TestErrorsCanBeClassified(t *testing.T) {
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewObjectInUseError("vehicle", "XYZ0001", "shipment_entries"), errs.ErrObjectInUse)

	var inUse *errs.ObjectInUseError
	require.ErrorAs(t, error(errs.NewObjectInUseError("vehicle", "XYZ0001", "employees")), &inUse)
	assert.Equal(t, "employees", inUse.ReferencedBy)
}
