package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation by the requesting academic
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateCourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Name or description missing"
// @Failure 404 {object} dto.ErrorResponse "Requester not found"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.courseService.CreateCourse(ctx.Request.Context(), requester, req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreateCourseResponse{CourseID: id}))
}

// GetCourseDetails returns a course to one of its members
// @Summary Get course details
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailsResponse}
// @Failure 403 {object} dto.ErrorResponse "Requester not enrolled"
// @Failure 404 {object} dto.ErrorResponse "Requester or course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseDetails(ctx *gin.Context) {
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "id", "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseDetails(ctx.Request.Context(), requester, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseDetailsResponse{Course: *course}))
}

// ListCourses lists every course
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}

	courses, err := c.courseService.ListCourses(ctx.Request.Context(), requester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{Courses: courses}))
}

// Enrol enrols the requesting academic in a course
// @Summary Enrol in a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.EnrolRequest false "Enrolment options"
// @Success 200 {object} dto.APIResponse{data=dto.EmptyResponse}
// @Failure 404 {object} dto.ErrorResponse "Requester or course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /courses/{id}/enrolments [post]
func (c *CourseController) Enrol(ctx *gin.Context) {
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "id", "course")
	if !ok {
		return
	}

	var req dto.EnrolRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	if err := c.courseService.Enrol(ctx.Request.Context(), requester, courseID, req.IsStaff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.EmptyResponse{}))
}
