package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/12keith/spelling-bee-backend/internal/middleware"
)

type Deps struct {
	AuthHandler  *AuthHTTP
	ScoreHandler *ScoreHTTP
	WordHandler  *WordHTTP
	JWTSecret    []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler(e)

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Spelling Bee Adventure API!")
	})

	e.GET("/words", d.WordHandler.List)

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	e.GET("/scores", d.ScoreHandler.List)

	authMw := middleware.NewBearerAuth(d.JWTSecret)
	private := e.Group("/scores")
	private.Use(authMw.RequireAuth)
	private.POST("", d.ScoreHandler.Submit)
}
