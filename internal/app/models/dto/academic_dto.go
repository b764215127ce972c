package dto

import "github.com/yigit/academics/internal/app/models"

// CreateAcademicRequest represents academic creation data
type CreateAcademicRequest struct {
	Name  string `json:"name" binding:"required" example:"Kevin"`
	Hobby string `json:"hobby" binding:"required" example:"Golf"`
}

// CreateAcademicResponse carries the new academic's id and a session token for it
type CreateAcademicResponse struct {
	AcademicID int64  `json:"academicId" example:"1"`
	Token      string `json:"token"`
	ExpiresIn  int    `json:"expiresIn" example:"3600"`
}

// AcademicDetailsResponse wraps a single academic
type AcademicDetailsResponse struct {
	Academic models.Academic `json:"academic"`
}

// AcademicListResponse represents a list of academics
type AcademicListResponse struct {
	Academics []models.AcademicSummary `json:"academics"`
}
