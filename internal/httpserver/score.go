package httpserver

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/12keith/spelling-bee-backend/internal/logging"
	"github.com/12keith/spelling-bee-backend/internal/service"
)

type ScoreHTTP struct {
	Svc *service.ScoreService
}

func (h *ScoreHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "score_submit")

	var req struct {
		Score *float64 `json:"score"`
	}

	// A JSON string or missing field is rejected the same way as a
	// fractional number: the score must be an integer-valued number.
	if err := c.Bind(&req); err != nil {
		l.Warn("submit_error", "status", 400, "reason", "score is not a number", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}
	if req.Score == nil || *req.Score != math.Trunc(*req.Score) {
		l.Warn("submit_error", "status", 400, "reason", "score is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}

	username, _ := c.Get("username").(string)

	if err := h.Svc.Submit(ctx, username, int(*req.Score)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Score saved successfully!",
	})
}

func (h *ScoreHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "score_list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
	}

	return c.JSON(http.StatusOK, items)
}
