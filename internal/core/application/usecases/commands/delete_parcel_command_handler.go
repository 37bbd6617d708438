package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"

	"go.uber.org/zap"
)

type DeleteParcelCommandHandler struct {
	uowFactory  ParcelUoWFactory
	invalidator Invalidator
	logger      *zap.Logger
}

func NewDeleteParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	invalidator Invalidator,
	logger *zap.Logger,
) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.invalidator.Changed(ctx, caching.Parcels, p.ID()); err != nil {
		logStaleCache(h.logger, "delete parcel", "parcelId", p.ID(), err)
		return err
	}

	h.logger.Info("parcel deleted", zap.String("parcelId", p.ID().String()))
	return nil
}
