// Package memory is an in-process storage adapter. It implements the same
// ports as the postgres adapter and is used by tests and by the memory
// storage driver.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
)

var ErrTransactionNotActive = errors.New("transaction is not active")

type guestRecord struct {
	id           kernel.UUID
	name         string
	status       guest.Status
	checkInTime  time.Time
	checkOutTime *time.Time
}

type parcelRecord struct {
	id           kernel.UUID
	guestID      kernel.UUID
	description  string
	receivedTime time.Time
	status       parcel.Status
}

type tables struct {
	guests  map[kernel.UUID]guestRecord
	parcels map[kernel.UUID]parcelRecord
}

func newTables() *tables {
	return &tables{
		guests:  make(map[kernel.UUID]guestRecord),
		parcels: make(map[kernel.UUID]parcelRecord),
	}
}

func (t *tables) clone() *tables {
	return &tables{
		guests:  maps.Clone(t.guests),
		parcels: maps.Clone(t.parcels),
	}
}

// access is what a repository needs from whoever owns the tables it works on:
// the store itself for autocommit access, or a unit of work with staged tables.
type access interface {
	read(ctx context.Context, fn func(*tables) error) error
	write(ctx context.Context, fn func(*tables) error) error
}

// Store holds the committed tables. Writers are serialized by a single
// store-wide slot, held by a unit of work from Begin to Commit or Rollback.
type Store struct {
	slot chan struct{}

	mu        sync.RWMutex
	committed *tables
}

func NewStore() *Store {
	return &Store{
		slot:      make(chan struct{}, 1),
		committed: newTables(),
	}
}

// NewUnitOfWorkFactory returns a factory of units of work over s.
func (s *Store) NewUnitOfWorkFactory() ports.UnitOfWorkFactory {
	return unitOfWorkFactory{store: s}
}

// GuestRepository returns a repository that reads and writes committed state directly.
func (s *Store) GuestRepository() ports.GuestRepository {
	return &GuestRepository{access: s}
}

func (s *Store) ParcelRepository() ports.ParcelRepository {
	return &ParcelRepository{access: s}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.slot
}

func (s *Store) snapshot() *tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed.clone()
}

func (s *Store) publish(staged *tables) {
	s.mu.Lock()
	s.committed = staged
	s.mu.Unlock()
}

func (s *Store) read(ctx context.Context, fn func(*tables) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.committed)
}

// write runs fn as a single-statement transaction.
func (s *Store) write(ctx context.Context, fn func(*tables) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	staged := s.snapshot()
	if err := fn(staged); err != nil {
		return err
	}
	s.publish(staged)
	return nil
}
