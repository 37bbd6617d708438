package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/domain/services"
	"parceltracker/internal/pkg/clock"

	"go.uber.org/zap"
)

// CheckOutGuestCommandHandler enforces the custody rule at check-out: the
// guest row is locked first, then its pending parcels are counted, so a
// parcel cannot be received for the guest between the check and the update.
type CheckOutGuestCommandHandler struct {
	uowFactory  UoWFactory
	clock       clock.Clock
	invalidator Invalidator
	logger      *zap.Logger
}

func NewCheckOutGuestCommandHandler(
	uowFactory UoWFactory,
	clock clock.Clock,
	invalidator Invalidator,
	logger *zap.Logger,
) CheckOutGuestCommandHandler {
	return CheckOutGuestCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Handle checks the guest out. Parcel cache entries are not touched.
func (h CheckOutGuestCommandHandler) Handle(ctx context.Context, cmd CheckOutGuestCommand) (*guest.Guest, error) {
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

	hasUnclaimed, err := parcelRepo.Exists(ctx, parcel.Unclaimed(g.ID()))
	if err != nil {
		return nil, err
	}

	if err = services.NewCustodyPolicy().CheckOut(g, hasUnclaimed, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = guestRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.invalidator.Changed(ctx, caching.Guests, g.ID()); err != nil {
		logStaleCache(h.logger, "check out", "guestId", g.ID(), err)
		return nil, err
	}

	h.logger.Info("guest checked out", zap.String("guestId", g.ID().String()))
	return g, nil
}
