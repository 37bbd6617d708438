package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"parceltracker/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// APIError is the body of every non-2xx response.
type APIError struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	DebugMessage string            `json:"debugMessage,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
	Errors       map[string]string `json:"errors,omitempty"`
}

type errorHandler struct {
	debug  bool
	now    func() time.Time
	logger *zap.Logger
}

// Handle is installed as echo's HTTPErrorHandler.
func (h errorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message, fields := classify(err)
	body := APIError{
		Status:    statusName(code),
		Message:   message,
		Timestamp: h.now().UTC(),
		Errors:    fields,
	}
	if code >= http.StatusInternalServerError && h.debug {
		body.DebugMessage = err.Error()
	}

	logFields := []zap.Field{
		zap.String("operation", c.Request().Method+" "+c.Path()),
		zap.String("entity", entityOf(c.Path())),
		zap.String("id", c.Param("id")),
		zap.Int("status", code),
		zap.Error(err),
	}
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", logFields...)
	} else {
		h.logger.Warn("request rejected", logFields...)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		h.logger.Error("write error response", zap.Error(err))
	}
}

func classify(err error) (int, string, map[string]string) {
	var (
		paramErr    *ParameterError
		requestErr  *openapi3filter.RequestError
		notFoundErr *errs.ObjectNotFoundError
		conflictErr *errs.ConflictError
		httpErr     *echo.HTTPError
	)

	switch {
	case errors.As(err, &paramErr):
		return http.StatusBadRequest, paramErr.Error(), map[string]string{paramErr.Name: paramErr.Err.Error()}

	case errors.As(err, &requestErr):
		field := requestField(requestErr)
		return http.StatusBadRequest, "request validation failed", map[string]string{field: requestReason(requestErr)}

	case errs.IsValidation(err):
		message := err.Error()
		if param, ok := errs.Param(err); ok {
			return http.StatusBadRequest, message, map[string]string{param: message}
		}
		return http.StatusBadRequest, message, nil

	case errors.As(err, &notFoundErr):
		// The cause is storage detail and stays in the log.
		return http.StatusNotFound, errs.NewObjectNotFoundError(notFoundErr.ParamName, notFoundErr.ID).Error(), nil

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error(), nil

	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Reason, nil

	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message), nil

	default:
		return http.StatusInternalServerError, unexpectedErrorMessage, nil
	}
}

func requestField(err *openapi3filter.RequestError) string {
	if err.Parameter != nil {
		return err.Parameter.Name
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err.Err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return strings.Join(pointer, ".")
		}
	}
	return "body"
}

func requestReason(err *openapi3filter.RequestError) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err.Err, &schemaErr) {
		return schemaErr.Reason
	}
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Reason
}

// statusName renders a status code the way the API reports it, e.g. NOT_FOUND.
func statusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return fmt.Sprint(code)
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func entityOf(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/guests"):
		return "guest"
	case strings.HasPrefix(path, "/api/parcels"):
		return "parcel"
	default:
		return ""
	}
}
