package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"courseapi/internal/config"
	"courseapi/internal/handler"
	"courseapi/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *logrus.Logger,
	authService service.AuthService,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
) {
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger, cfg.EnableGlobalErrorLogging)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/", handler.Index)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := handler.RequireAuth(authService)

	api := e.Group("/api")

	// User routes
	api.GET("/users", userHandler.ListUsers, requireAuth)
	api.POST("/users", userHandler.CreateUser)

	// Course routes
	api.GET("/courses", courseHandler.ListCourses)
	api.GET("/courses/:id", courseHandler.GetCourse)
	api.POST("/courses", courseHandler.CreateCourse, requireAuth)
	api.PUT("/courses/:id", courseHandler.UpdateCourse, requireAuth)
	api.DELETE("/courses/:id", courseHandler.DeleteCourse, requireAuth)
}

func requestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
			}).Info("request")
			return nil
		},
	})
}
