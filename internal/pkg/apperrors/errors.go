package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthenticated = errors.New("requester not identified")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Academic errors
var (
	ErrAcademicNotFound = NewCustomError(ErrResourceNotFound, "academic not found").WithCode("ACADEMIC_NOT_FOUND")
)

// Course errors
var (
	ErrCourseNotFound  = NewCustomError(ErrResourceNotFound, "course not found").WithCode("COURSE_NOT_FOUND")
	ErrNotEnrolled     = NewCustomError(ErrPermissionDenied, "academic is not enrolled in course").WithCode("NOT_ENROLLED")
	ErrAlreadyEnrolled = NewCustomError(ErrConflict, "academic is already enrolled in course").WithCode("ALREADY_ENROLLED")
)

// Registry errors
var (
	ErrIDSpaceExhausted = errors.New("no free identifier left in range")
)

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(field, message string) error {
	return NewCustomError(ErrValidationFailed, message).WithDetails(map[string]interface{}{"field": field})
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
