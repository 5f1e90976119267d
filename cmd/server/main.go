package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/12keith/spelling-bee-backend/internal/config"
	"github.com/12keith/spelling-bee-backend/internal/httpserver"
	"github.com/12keith/spelling-bee-backend/internal/logging"
	"github.com/12keith/spelling-bee-backend/internal/middleware"
	"github.com/12keith/spelling-bee-backend/internal/repo"
	"github.com/12keith/spelling-bee-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg.DatabasePath)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc: &service.AuthService{
				Repo:     gormRepo,
				Secret:   cfg.JWTSecret,
				TokenTTL: time.Hour,
			},
		},
		ScoreHandler: &httpserver.ScoreHTTP{Svc: &service.ScoreService{Repo: gormRepo}},
		WordHandler:  &httpserver.WordHTTP{Svc: &service.WordService{Repo: gormRepo}},
		JWTSecret:    cfg.JWTSecret,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}
	e.Use(middleware.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
