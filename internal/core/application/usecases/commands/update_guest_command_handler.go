package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/guest"

	"go.uber.org/zap"
)

// UpdateGuestCommandHandler applies a rename.
type UpdateGuestCommandHandler struct {
	uowFactory  GuestUoWFactory
	invalidator Invalidator
	logger      *zap.Logger
}

func NewUpdateGuestCommandHandler(
	uowFactory GuestUoWFactory,
	invalidator Invalidator,
	logger *zap.Logger,
) UpdateGuestCommandHandler {
	return UpdateGuestCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (h UpdateGuestCommandHandler) Handle(ctx context.Context, cmd UpdateGuestCommand) (*guest.Guest, error) {
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

	g, err := guestRepo.GetForUpdate(ctx, cmd.GuestID())
	if err != nil {
		return nil, err
	}

	if err = g.Rename(cmd.Name()); err != nil {
		return nil, err
	}

	if err = guestRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.invalidator.Changed(ctx, caching.Guests, g.ID()); err != nil {
		logStaleCache(h.logger, "update guest", "guestId", g.ID(), err)
		return nil, err
	}

	h.logger.Debug("guest updated", zap.String("guestId", g.ID().String()))
	return g, nil
}
