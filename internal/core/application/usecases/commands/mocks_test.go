package commands_test

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockGuestRepository struct{ mock.Mock }

func (m *MockGuestRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockGuestRepository) Add(ctx context.Context, g *guest.Guest) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGuestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGuestRepository) Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*guest.Guest)
	return g, args.Error(1)
}

func (m *MockGuestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*guest.Guest)
	return g, args.Error(1)
}

func (m *MockGuestRepository) List(ctx context.Context, page kernel.PageRequest) ([]*guest.Guest, int64, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]*guest.Guest)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockGuestRepository) Find(ctx context.Context, spec kernel.Specification[*guest.Guest]) ([]*guest.Guest, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*guest.Guest)
	return items, args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, page kernel.PageRequest) ([]*parcel.Parcel, int64, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]*parcel.Parcel)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockParcelRepository) Find(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*parcel.Parcel)
	return items, args.Error(1)
}

func (m *MockParcelRepository) Exists(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) (bool, error) {
	args := m.Called(ctx, spec)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies GuestUoW, ParcelUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) GuestRepository() ports.GuestRepository {
	return m.Called().Get(0).(ports.GuestRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

type MockGuestUoWFactory struct{ mock.Mock }

func (m *MockGuestUoWFactory) Create() commands.GuestUoW {
	return m.Called().Get(0).(commands.GuestUoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockInvalidator struct{ mock.Mock }

func (m *MockInvalidator) Created(ctx context.Context, region caching.Region) error {
	return m.Called(ctx, region).Error(0)
}

func (m *MockInvalidator) Changed(ctx context.Context, region caching.Region, id kernel.UUID) error {
	return m.Called(ctx, region, id).Error(0)
}
