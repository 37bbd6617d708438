package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/domain/services"

	"go.uber.org/zap"
)

// DeleteGuestCommandHandler removes guests. A guest that still owns parcel
// records, whatever their status, is kept and the handler returns
// services.ErrGuestHasParcels.
type DeleteGuestCommandHandler struct {
	uowFactory  UoWFactory
	invalidator Invalidator
	logger      *zap.Logger
}

func NewDeleteGuestCommandHandler(
	uowFactory UoWFactory,
	invalidator Invalidator,
	logger *zap.Logger,
) DeleteGuestCommandHandler {
	return DeleteGuestCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (h DeleteGuestCommandHandler) Handle(ctx context.Context, cmd DeleteGuestCommand) error {
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

	guestRepo := uow.GuestRepository()
	parcelRepo := uow.ParcelRepository()

	g, err := guestRepo.GetForUpdate(ctx, cmd.GuestID())
	if err != nil {
		return err
	}

	hasParcels, err := parcelRepo.Exists(ctx, parcel.OwnedBy(g.ID()))
	if err != nil {
		return err
	}

	if err = services.NewCustodyPolicy().Release(g, hasParcels); err != nil {
		return err
	}

	if err = guestRepo.Delete(ctx, g.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.invalidator.Changed(ctx, caching.Guests, g.ID()); err != nil {
		logStaleCache(h.logger, "delete guest", "guestId", g.ID(), err)
		return err
	}

	h.logger.Info("guest deleted", zap.String("guestId", g.ID().String()))
	return nil
}
