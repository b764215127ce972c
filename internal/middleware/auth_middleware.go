package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/auth"
)

const (
	// AcademicIDHeader identifies the requester when no bearer token is sent
	AcademicIDHeader = "X-Academic-ID"

	academicIDKey = "academicID"
)

// AuthMiddleware identifies the academic making a request
type AuthMiddleware struct {
	jwtService      *auth.JWTService
	academicService services.AcademicService
	allowHeader     bool
}

// NewAuthMiddleware creates a new AuthMiddleware. When allowHeader is set the
// requester may also be named by the X-Academic-ID header.
func NewAuthMiddleware(jwtService *auth.JWTService, academicService services.AcademicService, allowHeader bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:      jwtService,
		academicService: academicService,
		allowHeader:     allowHeader,
	}
}

// RequireAcademic resolves the requester and rejects the request unless it
// names a registered academic
func (m *AuthMiddleware) RequireAcademic() gin.HandlerFunc {
	return func(c *gin.Context) {
		academicID, err := m.requesterID(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		if !m.academicService.AcademicExists(c.Request.Context(), academicID) {
			HandleAPIError(c, fmt.Errorf("%w: %d", apperrors.ErrAcademicNotFound, academicID))
			return
		}

		c.Set(academicIDKey, academicID)
		c.Next()
	}
}

func (m *AuthMiddleware) requesterID(c *gin.Context) (int64, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		token, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			return 0, err
		}
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			return 0, err
		}
		return claims.AcademicID, nil
	}

	if m.allowHeader {
		if raw := c.GetHeader(AcademicIDHeader); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return 0, apperrors.NewValidationError(AcademicIDHeader, "academic id must be a number")
			}
			return id, nil
		}
	}

	return 0, apperrors.ErrUnauthenticated
}

// GetAcademicID returns the requester set by RequireAcademic
func GetAcademicID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(academicIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
