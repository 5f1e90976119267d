package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/12keith/spelling-bee-backend/internal/logging"
	"github.com/12keith/spelling-bee-backend/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	if err := h.Svc.Register(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, service.ErrUserAlreadyExists):
			return echo.NewHTTPError(http.StatusBadRequest, "Username already exists")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User registered successfully",
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid username or password")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   res.Token,
	})
}
