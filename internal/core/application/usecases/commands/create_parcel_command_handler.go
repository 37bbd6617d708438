package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/domain/services"
	"parceltracker/internal/pkg/clock"

	"go.uber.org/zap"
)

// CreateParcelCommandHandler receives parcels. It locks the owning guest row,
// the same row check-out locks, so receipt and check-out of one guest
// serialize.
type CreateParcelCommandHandler struct {
	uowFactory  UoWFactory
	clock       clock.Clock
	invalidator Invalidator
	logger      *zap.Logger
}

func NewCreateParcelCommandHandler(
	uowFactory UoWFactory,
	clock clock.Clock,
	invalidator Invalidator,
	logger *zap.Logger,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Handle returns errs.ObjectNotFoundError for an unknown guest and
// services.ErrGuestCheckedOut for a guest that already left.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	guestRepo := uow.GuestRepository()
	parcelRepo := uow.ParcelRepository()

	g, err := guestRepo.GetForUpdate(ctx, cmd.GuestID())
	if err != nil {
		return nil, err
	}

	id, err := parcelRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := services.NewCustodyPolicy().Receive(id, g, cmd.Description(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.invalidator.Created(ctx, caching.Parcels); err != nil {
		logStaleCache(h.logger, "receive parcel", "parcelId", p.ID(), err)
		return nil, err
	}

	h.logger.Info("parcel received",
		zap.String("parcelId", p.ID().String()),
		zap.String("guestId", p.GuestID().String()),
	)
	return p, nil
}
