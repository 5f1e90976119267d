package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/12keith/spelling-bee-backend/internal/logging"
)

// ErrorHandler renders every error as {"error": message}. Anything that is
// not an echo.HTTPError is logged and surfaced as a generic 500.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Something went wrong!"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}

		if code >= 500 {
			logging.FromContext(c.Request().Context()).Error("unhandled_error", "status", code, "error", err)
			msg = "Something went wrong!"
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}
