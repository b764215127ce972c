package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/middleware"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

// requesterID returns the academic resolved by the auth middleware
func requesterID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.GetAcademicID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return 0, false
	}
	return id, true
}

// pathID parses a numeric path parameter, answering 400 when it is not one
func pathID(ctx *gin.Context, param, what string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+what+" ID")
		errorDetail = errorDetail.WithField(param).WithDetails(what + " ID must be a valid number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, answering 400 on failure
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for requests whose body may be left out.
// An empty body, chunked or not, leaves obj untouched.
func bindOptionalJSON(ctx *gin.Context, obj interface{}) bool {
	if ctx.Request.ContentLength == 0 {
		return true
	}
	if err := ctx.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
