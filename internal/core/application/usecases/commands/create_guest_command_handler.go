package commands

import (
	"context"

	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/pkg/clock"

	"go.uber.org/zap"
)

// CreateGuestCommandHandler checks guests in.
type CreateGuestCommandHandler struct {
	uowFactory  GuestUoWFactory
	clock       clock.Clock
	invalidator Invalidator
	logger      *zap.Logger
}

func NewCreateGuestCommandHandler(
	uowFactory GuestUoWFactory,
	clock clock.Clock,
	invalidator Invalidator,
	logger *zap.Logger,
) CreateGuestCommandHandler {
	return CreateGuestCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Handle stores a CHECKED_IN guest with the current time as check-in time and
// drops every cached guest page.
func (h CreateGuestCommandHandler) Handle(ctx context.Context, cmd CreateGuestCommand) (*guest.Guest, error) {
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

	id, err := guestRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	g, err := guest.NewGuest(id, cmd.Name(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = guestRepo.Add(ctx, g); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.invalidator.Created(ctx, caching.Guests); err != nil {
		logStaleCache(h.logger, "check in", "guestId", g.ID(), err)
		return nil, err
	}

	h.logger.Info("guest checked in", zap.String("guestId", g.ID().String()))
	return g, nil
}
