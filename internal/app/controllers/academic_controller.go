package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/middleware"
	"github.com/yigit/academics/internal/pkg/auth"
)

// AcademicController handles academic-related operations
type AcademicController struct {
	academicService services.AcademicService
	jwtService      *auth.JWTService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService services.AcademicService, jwtService *auth.JWTService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
		jwtService:      jwtService,
	}
}

// CreateAcademic handles academic registration
// @Summary Register a new academic
// @Tags academics
// @Accept json
// @Produce json
// @Param request body dto.CreateAcademicRequest true "Academic information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateAcademicResponse}
// @Failure 400 {object} dto.ErrorResponse "Name or hobby missing"
// @Router /academics [post]
func (c *AcademicController) CreateAcademic(ctx *gin.Context) {
	var req dto.CreateAcademicRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.academicService.CreateAcademic(ctx.Request.Context(), req.Name, req.Hobby)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreateAcademicResponse{
		AcademicID: id,
		Token:      token,
		ExpiresIn:  expiresIn,
	}))
}

// GetAcademicDetails returns any academic's details to a registered requester
// @Summary Get academic details
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic to view"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicDetailsResponse}
// @Failure 404 {object} dto.ErrorResponse "Requester or academic not found"
// @Router /academics/{id} [get]
func (c *AcademicController) GetAcademicDetails(ctx *gin.Context) {
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}
	toView, ok := pathID(ctx, "id", "academic")
	if !ok {
		return
	}

	academic, err := c.academicService.GetAcademicDetails(ctx.Request.Context(), requester, toView)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AcademicDetailsResponse{Academic: *academic}))
}

// ListAcademics lists every academic
// @Summary List academics
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AcademicListResponse}
// @Failure 404 {object} dto.ErrorResponse "Requester not found"
// @Router /academics [get]
func (c *AcademicController) ListAcademics(ctx *gin.Context) {
	requester, ok := requesterID(ctx)
	if !ok {
		return
	}

	academics, err := c.academicService.ListAcademics(ctx.Request.Context(), requester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AcademicListResponse{Academics: academics}))
}
