package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "courseapi/internal/errors"
)

const routeNotFound = "Route Not Found"

// ErrorHandler is the single place where failures become responses. Classified
// errors map by kind, echo errors keep their status and anything else is a 500.
// When logErrors is set, server errors are logged.
func ErrorHandler(logger logrus.FieldLogger, logErrors bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		httpErr := toHTTPError(err)
		if logErrors && httpErr.StatusCode >= http.StatusInternalServerError {
			logger.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
			}).Error("global error handler")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(httpErr.StatusCode)
		} else {
			writeErr = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if writeErr != nil {
			logger.WithError(writeErr).Warn("write error response")
		}
	}
}

func toHTTPError(err error) *apperrors.HTTPError {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return apperrors.MapErrorToHTTP(err)
	}

	switch he.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return apperrors.NewHTTPError(http.StatusNotFound, routeNotFound)
	default:
		message := http.StatusText(he.Code)
		if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
		return apperrors.NewHTTPError(he.Code, message)
	}
}
