package memory

import (
	"context"
	"sync"

	"parceltracker/internal/core/ports"
)

type unitOfWorkFactory struct {
	store *Store
}

func (f unitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}

// UnitOfWork stages changes on a private copy of the tables and publishes the
// copy on Commit. While active it holds the store's writer slot, so a second
// unit of work blocks in Begin until this one ends.
type UnitOfWork struct {
	store *Store

	mu     sync.Mutex
	staged *tables

	guestRepo  *GuestRepository
	parcelRepo *ParcelRepository
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(store *Store) *UnitOfWork {
	uow := &UnitOfWork{store: store}
	uow.guestRepo = &GuestRepository{access: uow}
	uow.parcelRepo = &ParcelRepository{access: uow}
	return uow
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := u.store.acquire(ctx); err != nil {
		return err
	}

	u.mu.Lock()
	u.staged = u.store.snapshot()
	u.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.staged == nil {
		return ErrTransactionNotActive
	}

	u.store.publish(u.staged)
	u.staged = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.staged == nil {
		return nil
	}

	u.staged = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) GuestRepository() ports.GuestRepository {
	return u.guestRepo
}

func (u *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	return u.parcelRepo
}

func (u *UnitOfWork) read(ctx context.Context, fn func(*tables) error) error {
	staged := u.active()
	if staged == nil {
		return u.store.read(ctx, fn)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(staged)
}

func (u *UnitOfWork) write(ctx context.Context, fn func(*tables) error) error {
	staged := u.active()
	if staged == nil {
		return u.store.write(ctx, fn)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(staged)
}

func (u *UnitOfWork) active() *tables {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.staged
}
