package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// CreateEnrollment enrolls a student in a course
// @Summary Create an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Unknown student or course"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment, err := req.ToModel()
	if err != nil {
		invalidDate(ctx, err)
		return
	}

	created, err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// GetEnrollmentByID returns an enrollment with its student and course summaries
// @Summary Get enrollment details
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "enrollment")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// ListEnrollments returns one page of enrollments
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param studentId query int false "Filter by student"
// @Param courseId query int false "Filter by course"
// @Param status query string false "Filter by status" Enums(Active, Completed, Dropped)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse}
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	filter, ok := parseEnrollmentFilter(ctx)
	if !ok {
		return
	}

	enrollments, pagination, err := c.enrollmentService.ListEnrollments(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.EnrollmentListResponse{Enrollments: enrollments, Pagination: pagination}))
}

// UpdateEnrollment changes the grade, status or references of an enrollment
// @Summary Update an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.EnrollmentRequest true "Enrollment information"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "enrollment")
	if !ok {
		return
	}

	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment, err := req.ToModel()
	if err != nil {
		invalidDate(ctx, err)
		return
	}
	enrollment.ID = id

	updated, err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// @Summary Delete an enrollment
// @Tags enrollments
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "enrollment")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseEnrollmentFilter(ctx *gin.Context) (dto.EnrollmentFilter, bool) {
	var filter dto.EnrollmentFilter
	filter.Page, filter.Size = helpers.ParsePaginationParams(ctx)

	refs := []struct {
		key string
		dst **int64
	}{{"studentId", &filter.StudentID}, {"courseId", &filter.CourseID}}
	for _, ref := range refs {
		v, err := helpers.ParseOptionalInt64Query(ctx, ref.key)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameter").
				WithField(ref.key).
				WithDetails(ref.key + " must be an integer")
			middleware.AbortWithError(ctx, http.StatusBadRequest, errorDetail)
			return filter, false
		}
		*ref.dst = v
	}

	if raw := ctx.Query("status"); raw != "" {
		status, known := models.ParseEnrollmentStatus(raw)
		if !known {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameter").
				WithField("status").
				WithDetails("status must be one of Active, Completed, Dropped")
			middleware.AbortWithError(ctx, http.StatusBadRequest, errorDetail)
			return filter, false
		}
		filter.Status = &status
	}

	return filter, true
}
