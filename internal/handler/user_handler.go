package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"courseapi/internal/auth"
	"courseapi/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// ListUsers godoc
// @Summary Return the authenticated user
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	user := auth.CurrentUser(c)
	return c.JSON(http.StatusOK, []*UserResponse{toUserResponse(user)})
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 "Location: /"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	_, err := h.svc.CreateUser(c.Request().Context(), service.CreateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}
