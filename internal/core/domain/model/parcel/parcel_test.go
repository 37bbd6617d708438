package parcel_test

import (
	"testing"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var received = time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)

func newParcel(t *testing.T, guestID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), guestID, "Amazon box", received)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("should create a pending parcel", func(t *testing.T) {
		id, guestID := kernel.NewUUID(), kernel.NewUUID()

		p, err := parcel.NewParcel(id, guestID, " Amazon box ", received)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.GuestID().IsEqual(guestID))
		assert.Equal(t, "Amazon box", p.Description())
		assert.Equal(t, received, p.ReceivedTime())
		assert.Equal(t, parcel.Pending, p.Status())
		assert.True(t, p.IsPending())
	})

	t.Run("should require a description", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "  ", received)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		param, _ := errs.Param(err)
		assert.Equal(t, "description", param)
	})

	t.Run("should require a guest id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.UUID{}, "box", received)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		param, _ := errs.Param(err)
		assert.Equal(t, "guestId", param)
	})
}

func TestParcel_Describe(t *testing.T) {
	p := newParcel(t, kernel.NewUUID())

	require.NoError(t, p.Describe("Flowers"))
	assert.Equal(t, "Flowers", p.Description())

	require.ErrorIs(t, p.Describe(""), errs.ErrValueIsRequired)
	assert.Equal(t, "Flowers", p.Description())
}

func TestParcel_PickUp(t *testing.T) {
	t.Run("should move to picked up", func(t *testing.T) {
		p := newParcel(t, kernel.NewUUID())

		require.NoError(t, p.PickUp())

		assert.Equal(t, parcel.PickedUp, p.Status())
		assert.False(t, p.IsPending())
	})

	t.Run("should reject a second pickup", func(t *testing.T) {
		p := newParcel(t, kernel.NewUUID())
		require.NoError(t, p.PickUp())

		err := p.PickUp()

		require.ErrorIs(t, err, parcel.ErrAlreadyPickedUp)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, parcel.PickedUp, p.Status())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should restore a picked up parcel", func(t *testing.T) {
		p, err := parcel.RestoreParcel(kernel.NewUUID(), kernel.NewUUID(), "box", received, parcel.PickedUp)

		require.NoError(t, err)
		assert.Equal(t, parcel.PickedUp, p.Status())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		p, err := parcel.RestoreParcel(kernel.NewUUID(), kernel.NewUUID(), "box", received, parcel.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, p)
	})

	t.Run("should reject a zero value", func(t *testing.T) {
		require.ErrorIs(t, (&parcel.Parcel{}).Validate(), parcel.ErrParcelIsNotConstructed)
	})
}
