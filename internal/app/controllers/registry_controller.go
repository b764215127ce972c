package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/services"
)

// RegistryController handles operations on the registry as a whole
type RegistryController struct {
	adminService services.AdminService
}

// NewRegistryController creates a new RegistryController
func NewRegistryController(adminService services.AdminService) *RegistryController {
	return &RegistryController{adminService: adminService}
}

// Clear empties the registry
// @Summary Clear all academics and courses
// @Tags registry
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EmptyResponse}
// @Router /registry [delete]
func (c *RegistryController) Clear(ctx *gin.Context) {
	c.adminService.Clear(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.EmptyResponse{}))
}

// Health reports liveness and registry size
func (c *RegistryController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"status":   "ok",
		"registry": c.adminService.Stats(ctx.Request.Context()),
	}))
}
