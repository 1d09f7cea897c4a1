package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"courseapi/internal/auth"
	"courseapi/internal/service"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// CreateCourseRequest represents a course creation request. Any userId in the
// body is ignored; the owner is the authenticated user.
type CreateCourseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// UpdateCourseRequest represents a partial course update. Omitted fields are kept.
type UpdateCourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// ListCourses godoc
// @Summary List courses with their owners
// @Tags courses
// @Produce json
// @Success 200 {array} CourseResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.svc.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]CourseResponse, len(courses))
	for i := range courses {
		resp[i] = toCourseResponse(&courses[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// GetCourse godoc
// @Summary Get course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} CourseResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c echo.Context) error {
	course, err := h.svc.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// CreateCourse godoc
// @Summary Create course owned by the authenticated user
// @Tags courses
// @Accept json
// @Security BasicAuth
// @Param course body CreateCourseRequest true "Course payload"
// @Success 201 "Location: /courses/{id}"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	course, err := h.svc.CreateCourse(c.Request().Context(), auth.CurrentUser(c), service.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/courses/%d", course.ID))
	return c.NoContent(http.StatusCreated)
}

// UpdateCourse godoc
// @Summary Update a course owned by the authenticated user
// @Tags courses
// @Accept json
// @Security BasicAuth
// @Param id path int true "Course ID"
// @Param course body UpdateCourseRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	var req UpdateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.svc.UpdateCourse(c.Request().Context(), auth.CurrentUser(c), c.Param("id"), service.CoursePatch{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCourse godoc
// @Summary Delete a course owned by the authenticated user
// @Tags courses
// @Security BasicAuth
// @Param id path int true "Course ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	if err := h.svc.DeleteCourse(c.Request().Context(), auth.CurrentUser(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
