package http

import (
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GuestInput is the body of POST /api/guests and PUT /api/guests/{id}.
// Any status or timestamps sent by the client are ignored.
type GuestInput struct {
	Name string `json:"name"`
}

// ParcelInput is the body of POST /api/parcels.
type ParcelInput struct {
	GuestID     openapi_types.UUID `json:"guestId"`
	Description string             `json:"description"`
}

// ParcelPatch is the body of PUT /api/parcels/{id}.
type ParcelPatch struct {
	Description string `json:"description"`
}

// ListParams are the paging parameters of the list endpoints.
type ListParams struct {
	Page *int `form:"page,omitempty" json:"page,omitempty"`
	Size *int `form:"size,omitempty" json:"size,omitempty"`
}

type SearchGuestsParams struct {
	Name   *string `form:"name,omitempty" json:"name,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

type SearchParcelsParams struct {
	GuestID *openapi_types.UUID `form:"guestId,omitempty" json:"guestId,omitempty"`
	Status  *string             `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface is implemented by Server. One method per operation of openapi.yaml.
type ServerInterface interface {
	ListGuests(ctx echo.Context, params ListParams) error
	CreateGuest(ctx echo.Context) error
	SearchGuests(ctx echo.Context, params SearchGuestsParams) error
	GetGuest(ctx echo.Context, id openapi_types.UUID) error
	UpdateGuest(ctx echo.Context, id openapi_types.UUID) error
	DeleteGuest(ctx echo.Context, id openapi_types.UUID) error
	CheckOutGuest(ctx echo.Context, id openapi_types.UUID) error

	ListParcels(ctx echo.Context, params ListParams) error
	CreateParcel(ctx echo.Context) error
	SearchParcels(ctx echo.Context, params SearchParcelsParams) error
	GetParcel(ctx echo.Context, id openapi_types.UUID) error
	UpdateParcel(ctx echo.Context, id openapi_types.UUID) error
	DeleteParcel(ctx echo.Context, id openapi_types.UUID) error
	PickUpParcel(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListGuests(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListGuests(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateGuest(ctx echo.Context) error {
	return w.Handler.CreateGuest(ctx)
}

func (w *ServerInterfaceWrapper) SearchGuests(ctx echo.Context) error {
	var params SearchGuestsParams

	if err := runtime.BindQueryParameter("form", true, false, "name", ctx.QueryParams(), &params.Name); err != nil {
		return badParameter("name", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badParameter("status", err)
	}

	return w.Handler.SearchGuests(ctx, params)
}

func (w *ServerInterfaceWrapper) GetGuest(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetGuest(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateGuest(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateGuest(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteGuest(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteGuest(ctx, id)
}

func (w *ServerInterfaceWrapper) CheckOutGuest(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CheckOutGuest(ctx, id)
}

func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListParcels(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	return w.Handler.CreateParcel(ctx)
}

func (w *ServerInterfaceWrapper) SearchParcels(ctx echo.Context) error {
	var params SearchParcelsParams

	if err := runtime.BindQueryParameter("form", true, false, "guestId", ctx.QueryParams(), &params.GuestID); err != nil {
		return badParameter("guestId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badParameter("status", err)
	}

	return w.Handler.SearchParcels(ctx, params)
}

func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) PickUpParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PickUpParcel(ctx, id)
}

// EchoRouter is the subset of echo.Echo and echo.Group used by RegisterHandlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/guests", w.ListGuests)
	router.POST("/api/guests", w.CreateGuest)
	router.GET("/api/guests/search", w.SearchGuests)
	router.GET("/api/guests/:id", w.GetGuest)
	router.PUT("/api/guests/:id", w.UpdateGuest)
	router.DELETE("/api/guests/:id", w.DeleteGuest)
	router.PUT("/api/guests/:id/checkout", w.CheckOutGuest)

	router.GET("/api/parcels", w.ListParcels)
	router.POST("/api/parcels", w.CreateParcel)
	router.GET("/api/parcels/search", w.SearchParcels)
	router.GET("/api/parcels/:id", w.GetParcel)
	router.PUT("/api/parcels/:id", w.UpdateParcel)
	router.DELETE("/api/parcels/:id", w.DeleteParcel)
	router.PUT("/api/parcels/:id/pickup", w.PickUpParcel)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, badParameter("id", err)
	}
	return id, nil
}

func bindListParams(ctx echo.Context) (ListParams, error) {
	var params ListParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return params, badParameter("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size); err != nil {
		return params, badParameter("size", err)
	}

	return params, nil
}

// ParameterError reports a path or query parameter that could not be bound.
type ParameterError struct {
	Name string
	Err  error
}

func (e *ParameterError) Error() string {
	return "invalid format for parameter " + e.Name + ": " + e.Err.Error()
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

func badParameter(name string, err error) error {
	return &ParameterError{Name: name, Err: err}
}
