package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/parcel"

	"go.uber.org/zap"
)

type UpdateParcelCommandHandler struct {
	uowFactory  ParcelUoWFactory
	invalidator Invalidator
	logger      *zap.Logger
}

func NewUpdateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	invalidator Invalidator,
	logger *zap.Logger,
) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (h UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) (*parcel.Parcel, error) {
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

	if err = p.Describe(cmd.Description()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.invalidator.Changed(ctx, caching.Parcels, p.ID()); err != nil {
		logStaleCache(h.logger, "update parcel", "parcelId", p.ID(), err)
		return nil, err
	}

	h.logger.Debug("parcel updated", zap.String("parcelId", p.ID().String()))
	return p, nil
}
