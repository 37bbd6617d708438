package queries_test

import (
	"context"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
)

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockGuestRepository) Add(ctx context.Context, aggregate *guest.Guest) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockGuestRepository) Update(ctx context.Context, aggregate *guest.Guest) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockGuestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGuestRepository) Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guest.Guest), args.Error(1)
}

func (m *MockGuestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guest.Guest), args.Error(1)
}

func (m *MockGuestRepository) List(ctx context.Context, page kernel.PageRequest) ([]*guest.Guest, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*guest.Guest), args.Get(1).(int64), args.Error(2)
}

func (m *MockGuestRepository) Find(
	ctx context.Context,
	spec kernel.Specification[*guest.Guest],
) ([]*guest.Guest, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*guest.Guest), args.Error(1)
}

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, page kernel.PageRequest) ([]*parcel.Parcel, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*parcel.Parcel), args.Get(1).(int64), args.Error(2)
}

func (m *MockParcelRepository) Find(
	ctx context.Context,
	spec kernel.Specification[*parcel.Parcel],
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Exists(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) (bool, error) {
	args := m.Called(ctx, spec)
	return args.Bool(0), args.Error(1)
}
