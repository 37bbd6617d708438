// Package http is the REST adapter. Handlers translate requests into
// commands and queries and leave error rendering to the echo error handler.
package http

import (
	"net/http"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateGuest   commands.CreateGuestCommandHandler
	UpdateGuest   commands.UpdateGuestCommandHandler
	DeleteGuest   commands.DeleteGuestCommandHandler
	CheckOutGuest commands.CheckOutGuestCommandHandler
	GetGuest      queries.GetGuestQueryHandler
	ListGuests    queries.ListGuestsQueryHandler
	SearchGuests  queries.SearchGuestsQueryHandler

	CreateParcel  commands.CreateParcelCommandHandler
	UpdateParcel  commands.UpdateParcelCommandHandler
	DeleteParcel  commands.DeleteParcelCommandHandler
	PickUpParcel  commands.PickUpParcelCommandHandler
	GetParcel     queries.GetParcelQueryHandler
	ListParcels   queries.ListParcelsQueryHandler
	SearchParcels queries.SearchParcelsQueryHandler
}

// Server implements ServerInterface.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// ListGuests handles GET /api/guests.
func (s *Server) ListGuests(ctx echo.Context, params ListParams) error {
	query, err := queries.NewListGuestsQuery(valueOr(params.Page, 0), valueOr(params.Size, kernel.DefaultPageSize))
	if err != nil {
		return err
	}

	page, err := s.h.ListGuests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, page)
}

// CreateGuest handles POST /api/guests.
func (s *Server) CreateGuest(ctx echo.Context) error {
	var body GuestInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateGuestCommand(body.Name)
	if err != nil {
		return err
	}

	g, err := s.h.CreateGuest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, queries.NewGuestResponse(g))
}

// SearchGuests handles GET /api/guests/search. The status is matched case-insensitively.
func (s *Server) SearchGuests(ctx echo.Context, params SearchGuestsParams) error {
	filter := guest.Filter{Name: params.Name}
	if params.Status != nil {
		status, err := guest.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	found, err := s.h.SearchGuests.Handle(ctx.Request().Context(), queries.NewSearchGuestsQuery(filter))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, found)
}

func (s *Server) GetGuest(ctx echo.Context, id openapi_types.UUID) error {
	guestID, err := toID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetGuestQuery(guestID)
	if err != nil {
		return err
	}

	resp, err := s.h.GetGuest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdateGuest handles PUT /api/guests/{id}. Only the name is taken from the body.
func (s *Server) UpdateGuest(ctx echo.Context, id openapi_types.UUID) error {
	guestID, err := toID(id)
	if err != nil {
		return err
	}

	var body GuestInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateGuestCommand(guestID, body.Name)
	if err != nil {
		return err
	}

	g, err := s.h.UpdateGuest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, queries.NewGuestResponse(g))
}

func (s *Server) DeleteGuest(ctx echo.Context, id openapi_types.UUID) error {
	guestID, err := toID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteGuestCommand(guestID)
	if err != nil {
		return err
	}

	if err := s.h.DeleteGuest.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckOutGuest handles PUT /api/guests/{id}/checkout.
func (s *Server) CheckOutGuest(ctx echo.Context, id openapi_types.UUID) error {
	guestID, err := toID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckOutGuestCommand(guestID)
	if err != nil {
		return err
	}

	g, err := s.h.CheckOutGuest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, queries.NewGuestResponse(g))
}

func (s *Server) ListParcels(ctx echo.Context, params ListParams) error {
	query, err := queries.NewListParcelsQuery(valueOr(params.Page, 0), valueOr(params.Size, kernel.DefaultPageSize))
	if err != nil {
		return err
	}

	page, err := s.h.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, page)
}

// CreateParcel handles POST /api/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body ParcelInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	guestID, err := kernel.UUIDFromBytes(body.GuestID[:])
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("guestId", err)
	}

	cmd, err := commands.NewCreateParcelCommand(guestID, body.Description)
	if err != nil {
		return err
	}

	p, err := s.h.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, queries.NewParcelResponse(p))
}

func (s *Server) SearchParcels(ctx echo.Context, params SearchParcelsParams) error {
	var filter parcel.Filter
	if params.GuestID != nil {
		guestID, err := toID(*params.GuestID)
		if err != nil {
			return err
		}
		filter.GuestID = &guestID
	}
	if params.Status != nil {
		status, err := parcel.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	found, err := s.h.SearchParcels.Handle(ctx.Request().Context(), queries.NewSearchParcelsQuery(filter))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, found)
}

func (s *Server) GetParcel(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return err
	}

	resp, err := s.h.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateParcel(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toID(id)
	if err != nil {
		return err
	}

	var body ParcelPatch
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateParcelCommand(parcelID, body.Description)
	if err != nil {
		return err
	}

	p, err := s.h.UpdateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, queries.NewParcelResponse(p))
}

func (s *Server) DeleteParcel(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return err
	}

	if err := s.h.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickUpParcel handles PUT /api/parcels/{id}/pickup.
func (s *Server) PickUpParcel(ctx echo.Context, id openapi_types.UUID) error {
	parcelID, err := toID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPickUpParcelCommand(parcelID)
	if err != nil {
		return err
	}

	p, err := s.h.PickUpParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, queries.NewParcelResponse(p))
}

func toID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
