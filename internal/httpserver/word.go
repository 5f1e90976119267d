package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/12keith/spelling-bee-backend/internal/logging"
	"github.com/12keith/spelling-bee-backend/internal/service"
)

type WordHTTP struct {
	Svc *service.WordService
}

func (h *WordHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "word_list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
	}

	return c.JSON(http.StatusOK, items)
}
