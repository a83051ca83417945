package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSONResponse writes v as the whole response body with status 200.
func JSONResponse(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusOK, v)
}

// ErrorResponse writes {"error": msg}. The status comes from an AppError or
// echo.HTTPError in the chain, 500 otherwise.
func ErrorResponse(c echo.Context, err error) error {
	status, msg := StatusAndMessage(err)
	return c.JSON(status, ErrorBody{Error: msg})
}

// StatusAndMessage maps an error to the HTTP status and message it is reported with.
func StatusAndMessage(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Error()
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	msg := err.Error()
	if msg == "" {
		msg = http.StatusText(http.StatusInternalServerError)
	}
	return http.StatusInternalServerError, msg
}

// HTTPErrorHandler renders errors escaping handlers (unknown routes, bad methods, render failures)
// in the same {"error": msg} shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, msg := StatusAndMessage(err)
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorBody{Error: msg})
}
