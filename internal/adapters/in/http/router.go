package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterConfig tunes the error responses.
type RouterConfig struct {
	// DebugErrors adds the internal error text to 5xx responses.
	DebugErrors bool
	Now         func() time.Time
}

// NewRouter builds the echo instance serving the API, the OpenAPI document
// and the Swagger UI.
func NewRouter(ctx context.Context, server ServerInterface, cfg RouterConfig, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := LoadSpec(ctx)
	if err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwagger(specJSON)

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = errorHandler{
		debug:  cfg.DebugErrors,
		now:    now,
		logger: logger.With(zap.String("component", "http")),
	}.Handle

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger.With(zap.String("component", "http"))))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, specJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server)

	return e, nil
}
