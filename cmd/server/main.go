package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"courseapi/docs"
	"courseapi/internal/auth"
	"courseapi/internal/config"
	"courseapi/internal/db"
	"courseapi/internal/handler"
	"courseapi/internal/logging"
	"courseapi/internal/repository"
	"courseapi/internal/router"
	"courseapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Course Catalog API
// @version 1.0
// @description REST API for users and the courses they own, with HTTP Basic authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.basic BasicAuth
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		_, _ = os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg)

	gormDB, err := db.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("database init: %v", err)
	}
	logger.WithField("driver", cfg.Database.Driver).Info("connected to database")

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Fatalf("reset database: %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatalf("migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	// Initialize services
	hasher := auth.NewBcryptHasher(0)
	authService := service.NewAuthService(userRepo, hasher)
	userService := service.NewUserService(userRepo, hasher)
	courseService := service.NewCourseService(courseRepo)

	e := echo.New()
	router.Register(
		e,
		cfg,
		logger,
		authService,
		handler.NewUserHandler(userService),
		handler.NewCourseHandler(courseService),
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.Port
	}
	swaggerHost = strings.TrimPrefix(strings.TrimPrefix(swaggerHost, "http://"), "https://")
	docs.SwaggerInfo.Host = swaggerHost
	logger.Infof("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.Port
		logger.Infof("server is listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
