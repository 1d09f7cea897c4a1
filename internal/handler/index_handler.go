package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index godoc
// @Summary Greeting
// @Tags index
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the REST API project!",
	})
}
