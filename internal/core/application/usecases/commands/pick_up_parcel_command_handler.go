package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/parcel"

	"go.uber.org/zap"
)

// PickUpParcelCommandHandler marks parcels as picked up. The parcel row is
// locked, so of two concurrent pickups the second sees PICKED_UP and gets
// parcel.ErrAlreadyPickedUp.
type PickUpParcelCommandHandler struct {
	uowFactory  ParcelUoWFactory
	invalidator Invalidator
	logger      *zap.Logger
}

func NewPickUpParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	invalidator Invalidator,
	logger *zap.Logger,
) PickUpParcelCommandHandler {
	return PickUpParcelCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (h PickUpParcelCommandHandler) Handle(ctx context.Context, cmd PickUpParcelCommand) (*parcel.Parcel, error) {
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

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = p.PickUp(); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.invalidator.Changed(ctx, caching.Parcels, p.ID()); err != nil {
		logStaleCache(h.logger, "pick up parcel", "parcelId", p.ID(), err)
		return nil, err
	}

	h.logger.Info("parcel picked up",
		zap.String("parcelId", p.ID().String()),
		zap.String("guestId", p.GuestID().String()),
	)
	return p, nil
}
