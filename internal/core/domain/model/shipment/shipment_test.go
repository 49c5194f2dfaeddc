package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, raw int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(raw)
	require.NoError(t, err)
	return id
}

func mustWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func mustPlate(t *testing.T, raw string) fleet.Plate {
	t.Helper()
	p, err := fleet.NewPlate(raw)
	require.NoError(t, err)
	return p
}

func TestNewEntry(t *testing.T) {
	at := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	plate := mustPlate(t, "ABC1D23")

	t.Run("valid", func(t *testing.T) {
		e, err := shipment.NewEntry(plate, mustID(t, 7), at)
		require.NoError(t, err)
		assert.Equal(t, plate, e.Plate())
		assert.Equal(t, mustID(t, 7), e.ParcelID())
		assert.Equal(t, at, e.LoadedAt())
		require.NoError(t, e.Validate())
	})

	t.Run("invalid parcel ref", func(t *testing.T) {
		_, err := shipment.NewEntry(plate, 0, at)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero loading instant", func(t *testing.T) {
		_, err := shipment.NewEntry(plate, mustID(t, 7), time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e shipment.Entry
		require.ErrorIs(t, e.Validate(), shipment.ErrEntryIsNotConstructed)
	})
}

func TestNewPackingSession(t *testing.T) {
	at := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	s, err := shipment.NewPackingSession(mustPlate(t, "ABC1D23"), mustWeight(t, 1000), at)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", s.ID().String())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1000.0, s.Headroom())

	_, err = shipment.NewPackingSession(mustPlate(t, "ABC1D23"), mustWeight(t, 1000), time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPackingSession_Propose(t *testing.T) {
	at := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	t.Run("greedy accept within capacity", func(t *testing.T) {
		s, err := shipment.NewPackingSession(mustPlate(t, "ABC1D23"), mustWeight(t, 1000), at)
		require.NoError(t, err)

		require.NoError(t, s.Propose(mustID(t, 1), mustWeight(t, 400)))
		require.NoError(t, s.Propose(mustID(t, 2), mustWeight(t, 400)))

		// 300kg does not fit into the remaining 200kg.
		err = s.Propose(mustID(t, 3), mustWeight(t, 300))
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)

		var capErr *errs.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 300.0, capErr.AttemptedKG)
		assert.Equal(t, 1000.0, capErr.LimitKG)
		assert.Equal(t, 200.0, capErr.HeadroomKG)

		// The session stays open: a lighter parcel still fits.
		require.NoError(t, s.Propose(mustID(t, 4), mustWeight(t, 200)))
		assert.Equal(t, 1000.0, s.TotalWeight())
		assert.Equal(t, 0.0, s.Headroom())
		assert.Len(t, s.Entries(), 3)
	})

	t.Run("exact fit is accepted", func(t *testing.T) {
		s, err := shipment.NewPackingSession(mustPlate(t, "ABC1D23"), mustWeight(t, 100), at)
		require.NoError(t, err)
		require.NoError(t, s.Propose(mustID(t, 1), mustWeight(t, 100)))
	})

	t.Run("duplicate parcel is rejected", func(t *testing.T) {
		s, err := shipment.NewPackingSession(mustPlate(t, "ABC1D23"), mustWeight(t, 1000), at)
		require.NoError(t, err)
		require.NoError(t, s.Propose(mustID(t, 1), mustWeight(t, 10)))
		require.ErrorIs(t, s.Propose(mustID(t, 1), mustWeight(t, 10)), errs.ErrDuplicateValue)
		assert.Len(t, s.Entries(), 1)
	})

	t.Run("entries share plate and instant", func(t *testing.T) {
		s, err := shipment.NewPackingSession(mustPlate(t, "XYZ9K88"), mustWeight(t, 50), at)
		require.NoError(t, err)
		require.NoError(t, s.Propose(mustID(t, 1), mustWeight(t, 10)))
		require.NoError(t, s.Propose(mustID(t, 2), mustWeight(t, 10)))

		for _, e := range s.Entries() {
			assert.Equal(t, mustPlate(t, "XYZ9K88"), e.Plate())
			assert.Equal(t, at, e.LoadedAt())
		}
	})

	t.Run("nil session fails validation", func(t *testing.T) {
		var s *shipment.PackingSession
		require.ErrorIs(t, s.Propose(mustID(t, 1), mustWeight(t, 1)),
			shipment.ErrPackingSessionIsNotConstructed)
	})
}
