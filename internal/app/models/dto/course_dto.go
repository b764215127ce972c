package dto

import "github.com/yigit/academics/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required" example:"COMP1531"`
	Description string `json:"description" binding:"required" example:"Software engineering fundamentals"`
}

// CreateCourseResponse carries the new course's id
type CreateCourseResponse struct {
	CourseID int64 `json:"courseId" example:"1"`
}

// EnrolRequest represents an enrolment of the requesting academic
type EnrolRequest struct {
	IsStaff bool `json:"isStaff"`
}

// CourseDetailsResponse wraps a single course
type CourseDetailsResponse struct {
	Course models.Course `json:"course"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []models.CourseSummary `json:"courses"`
}
