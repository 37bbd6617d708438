package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parceltracker/internal/adapters/out/memory"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func addGuest(t *testing.T, store *memory.Store, name string, checkIn time.Time) *guest.Guest {
	t.Helper()
	g, err := guest.NewGuest(kernel.NewUUID(), name, checkIn)
	require.NoError(t, err)
	require.NoError(t, store.GuestRepository().Add(t.Context(), g))
	return g
}

func addParcel(t *testing.T, store *memory.Store, owner *guest.Guest, received time.Time) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), owner.ID(), "Box", received)
	require.NoError(t, err)
	require.NoError(t, store.ParcelRepository().Add(t.Context(), p))
	return p
}

func TestGuestRepository(t *testing.T) {
	t.Run("should round trip a guest", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		g := addGuest(t, store, "John Doe", base)

		// When
		got, err := store.GuestRepository().Get(t.Context(), g.ID())

		// Then
		require.NoError(t, err)
		assert.Equal(t, g.Name(), got.Name())
		assert.Equal(t, guest.CheckedIn, got.Status())
		assert.True(t, got.CheckInTime().Equal(base))
		assert.Nil(t, got.CheckOutTime())
	})

	t.Run("should not share state with returned aggregates", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		g := addGuest(t, store, "John Doe", base)
		got, err := store.GuestRepository().Get(t.Context(), g.ID())
		require.NoError(t, err)

		// When
		require.NoError(t, got.Rename("Someone Else"))

		// Then
		again, err := store.GuestRepository().Get(t.Context(), g.ID())
		require.NoError(t, err)
		assert.Equal(t, "John Doe", again.Name())
	})

	t.Run("should report unknown ids as not found", func(t *testing.T) {
		store := memory.NewStore()
		repo := store.GuestRepository()

		_, err := repo.Get(t.Context(), kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		g, err := guest.NewGuest(kernel.NewUUID(), "Ghost", base)
		require.NoError(t, err)
		require.ErrorIs(t, repo.Update(t.Context(), g), errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.Delete(t.Context(), g.ID()), errs.ErrObjectNotFound)
	})

	t.Run("should refuse to delete a guest that owns parcels", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		g := addGuest(t, store, "John Doe", base)
		addParcel(t, store, g, base.Add(time.Hour))

		// When
		err := store.GuestRepository().Delete(t.Context(), g.ID())

		// Then
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should page in check-in order", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		third := addGuest(t, store, "C", base.Add(2*time.Hour))
		first := addGuest(t, store, "A", base)
		second := addGuest(t, store, "B", base.Add(time.Hour))

		// When
		page0, err := kernel.NewPageRequest(0, 2)
		require.NoError(t, err)
		items, total, err := store.GuestRepository().List(t.Context(), page0)
		require.NoError(t, err)

		page1, err := kernel.NewPageRequest(1, 2)
		require.NoError(t, err)
		rest, _, err := store.GuestRepository().List(t.Context(), page1)
		require.NoError(t, err)

		// Then
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 2)
		assert.Equal(t, first.ID(), items[0].ID())
		assert.Equal(t, second.ID(), items[1].ID())
		require.Len(t, rest, 1)
		assert.Equal(t, third.ID(), rest[0].ID())
	})

	t.Run("should return an empty page past the end", func(t *testing.T) {
		store := memory.NewStore()
		addGuest(t, store, "A", base)

		page, err := kernel.NewPageRequest(5, 20)
		require.NoError(t, err)
		items, total, err := store.GuestRepository().List(t.Context(), page)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, int64(1), total)
	})

	t.Run("should find guests by filter", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		john := addGuest(t, store, "John Doe", base)
		addGuest(t, store, "Jane Roe", base.Add(time.Minute))

		// When
		fragment := "doe"
		found, err := store.GuestRepository().Find(t.Context(), guest.Filter{Name: &fragment}.Specification())
		require.NoError(t, err)
		all, err := store.GuestRepository().Find(t.Context(), guest.Filter{}.Specification())
		require.NoError(t, err)

		// Then
		require.Len(t, found, 1)
		assert.Equal(t, john.ID(), found[0].ID())
		assert.Len(t, all, 2)
	})
}

func TestParcelRepository(t *testing.T) {
	t.Run("should require the owning guest", func(t *testing.T) {
		store := memory.NewStore()
		p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "Box", base)
		require.NoError(t, err)

		err = store.ParcelRepository().Add(t.Context(), p)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should answer existence queries", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		g := addGuest(t, store, "John Doe", base)
		other := addGuest(t, store, "Jane Roe", base)
		p := addParcel(t, store, g, base.Add(time.Hour))
		repo := store.ParcelRepository()

		// When
		pending, err := repo.Exists(t.Context(), parcel.Unclaimed(g.ID()))
		require.NoError(t, err)
		none, err := repo.Exists(t.Context(), parcel.OwnedBy(other.ID()))
		require.NoError(t, err)

		require.NoError(t, p.PickUp())
		require.NoError(t, repo.Update(t.Context(), p))
		afterPickup, err := repo.Exists(t.Context(), parcel.Unclaimed(g.ID()))
		require.NoError(t, err)

		// Then
		assert.True(t, pending)
		assert.False(t, none)
		assert.False(t, afterPickup)
	})

	t.Run("should page in received order", func(t *testing.T) {
		store := memory.NewStore()
		g := addGuest(t, store, "John Doe", base)
		late := addParcel(t, store, g, base.Add(2*time.Hour))
		early := addParcel(t, store, g, base.Add(time.Hour))

		items, total, err := store.ParcelRepository().List(t.Context(), kernel.FirstPage())

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, items, 2)
		assert.Equal(t, early.ID(), items[0].ID())
		assert.Equal(t, late.ID(), items[1].ID())
	})
}

func TestUnitOfWork(t *testing.T) {
	t.Run("should publish staged changes on commit", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		uow := store.NewUnitOfWorkFactory().Create()
		g, err := guest.NewGuest(kernel.NewUUID(), "John Doe", base)
		require.NoError(t, err)

		// When
		require.NoError(t, uow.Begin(t.Context()))
		require.NoError(t, uow.GuestRepository().Add(t.Context(), g))

		_, errBeforeCommit := store.GuestRepository().Get(t.Context(), g.ID())
		require.NoError(t, uow.Commit(t.Context()))
		_, errAfterCommit := store.GuestRepository().Get(t.Context(), g.ID())

		// Then
		require.ErrorIs(t, errBeforeCommit, errs.ErrObjectNotFound)
		require.NoError(t, errAfterCommit)
	})

	t.Run("should discard staged changes on rollback", func(t *testing.T) {
		store := memory.NewStore()
		uow := store.NewUnitOfWorkFactory().Create()
		g, err := guest.NewGuest(kernel.NewUUID(), "John Doe", base)
		require.NoError(t, err)

		require.NoError(t, uow.Begin(t.Context()))
		require.NoError(t, uow.GuestRepository().Add(t.Context(), g))
		require.NoError(t, uow.Rollback(t.Context()))

		_, err = store.GuestRepository().Get(t.Context(), g.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should make rollback after commit a no-op", func(t *testing.T) {
		uow := memory.NewStore().NewUnitOfWorkFactory().Create()

		require.NoError(t, uow.Begin(t.Context()))
		require.NoError(t, uow.Commit(t.Context()))
		require.NoError(t, uow.Rollback(t.Context()))
		require.ErrorIs(t, uow.Commit(t.Context()), memory.ErrTransactionNotActive)
	})

	t.Run("should block a second unit of work until the first ends", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		factory := store.NewUnitOfWorkFactory()
		first := factory.Create()
		require.NoError(t, first.Begin(t.Context()))

		// When
		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()
		err := factory.Create().Begin(ctx)

		// Then
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.NoError(t, first.Rollback(t.Context()))
		second := factory.Create()
		require.NoError(t, second.Begin(t.Context()))
		require.NoError(t, second.Rollback(t.Context()))
	})

	t.Run("should serialize concurrent read-modify-write cycles", func(t *testing.T) {
		// Given
		store := memory.NewStore()
		factory := store.NewUnitOfWorkFactory()
		g := addGuest(t, store, "John Doe", base)

		// When
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			conflicts int
		)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ctx := context.Background()
				uow := factory.Create()
				if err := uow.Begin(ctx); err != nil {
					return
				}
				defer func() { _ = uow.Rollback(ctx) }()

				loaded, err := uow.GuestRepository().GetForUpdate(ctx, g.ID())
				if err != nil {
					return
				}
				if err := loaded.CheckOut(base.Add(time.Hour)); err != nil {
					mu.Lock()
					conflicts++
					mu.Unlock()
					return
				}
				if err := uow.GuestRepository().Update(ctx, loaded); err != nil {
					return
				}
				_ = uow.Commit(ctx)
			}()
		}
		wg.Wait()

		// Then
		assert.Equal(t, 9, conflicts)
		got, err := store.GuestRepository().Get(t.Context(), g.ID())
		require.NoError(t, err)
		assert.Equal(t, guest.CheckedOut, got.Status())
	})
}
