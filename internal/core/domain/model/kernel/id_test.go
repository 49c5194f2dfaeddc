package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive value", func(t *testing.T) {
		id, err := kernel.NewID(17)
		require.NoError(t, err)
		assert.Equal(t, int64(17), id.Int64())
		assert.Equal(t, "17", id.String())
	})

	t.Run("zero is invalid", func(t *testing.T) {
		_, err := kernel.NewID(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative is invalid", func(t *testing.T) {
		_, err := kernel.NewID(-3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestID_IsEqual(t *testing.T) {
	a, _ := kernel.NewID(5)
	b, _ := kernel.NewID(5)
	c, _ := kernel.NewID(6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestNewWeight(t *testing.T) {
	t.Run("positive value", func(t *testing.T) {
		w, err := kernel.NewWeight(12.5)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, w.KG(), 0.001)
		assert.Equal(t, "12.50kg", w.String())
	})

	t.Run("zero is invalid", func(t *testing.T) {
		_, err := kernel.NewWeight(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative is invalid", func(t *testing.T) {
		_, err := kernel.NewWeight(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
