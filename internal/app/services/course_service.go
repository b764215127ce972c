package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/repositories"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, academicID int64, name, description string) (int64, error)
	GetCourseDetails(ctx context.Context, academicID, courseID int64) (*models.Course, error)
	ListCourses(ctx context.Context, academicID int64) ([]models.CourseSummary, error)
	Enrol(ctx context.Context, academicID, courseID int64, isStaff bool) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	registry *repositories.Registry
	logger   zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(registry *repositories.Registry, lgr zerolog.Logger) CourseService {
	return &courseServiceImpl{
		registry: registry,
		logger:   lgr.With().Str("service", "course").Logger(),
	}
}

// CreateCourse creates a course with the academic as its first staff member
func (s *courseServiceImpl) CreateCourse(ctx context.Context, academicID int64, name, description string) (int64, error) {
	id, err := s.registry.AddCourse(academicID, name, description)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Int64("courseId", id).Int64("academicId", academicID).Str("name", name).Msg("Course created")
	return id, nil
}

// GetCourseDetails returns the full course, provided the academic is enrolled in it
func (s *courseServiceImpl) GetCourseDetails(ctx context.Context, academicID, courseID int64) (*models.Course, error) {
	if err := requireAcademic(s.registry, academicID); err != nil {
		return nil, err
	}

	course, err := s.registry.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	role := course.RoleOf(academicID)
	if role == "" {
		return nil, fmt.Errorf("%w: academic %d, course %d", apperrors.ErrNotEnrolled, academicID, courseID)
	}

	s.logger.Debug().Int64("courseId", courseID).Int64("academicId", academicID).Str("role", string(role)).Msg("Course details viewed")
	return course, nil
}

// ListCourses returns every course in creation order, whatever the requester is enrolled in
func (s *courseServiceImpl) ListCourses(ctx context.Context, academicID int64) ([]models.CourseSummary, error) {
	if err := requireAcademic(s.registry, academicID); err != nil {
		return nil, err
	}

	courses := s.registry.ListCourses()
	summaries := make([]models.CourseSummary, 0, len(courses))
	for _, c := range courses {
		summaries = append(summaries, c.Summary())
	}
	return summaries, nil
}

// Enrol adds the academic to the course, as staff when isStaff is set
func (s *courseServiceImpl) Enrol(ctx context.Context, academicID, courseID int64, isStaff bool) error {
	if err := s.registry.AddMember(courseID, academicID, isStaff); err != nil {
		return err
	}

	s.logger.Info().
		Int64("courseId", courseID).
		Int64("academicId", academicID).
		Str("role", string(models.RoleFor(isStaff))).
		Msg("Academic enrolled")
	return nil
}
