package http

import (
	"errors"
	"net/http"

	"boutique/internal/generated/servers"
	"boutique/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode maps the error taxonomy to HTTP status codes. A joined error
// holding a validation failure is reported as a bad request.
func statusCode(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsInvalidStatus(err):
		return http.StatusUnprocessableEntity
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// HTTPErrorHandler renders errors escaping the handlers, such as unknown
// routes and malformed parameters, in the API error format.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
	if err != nil {
		ctx.Logger().Error(err)
	}
}
