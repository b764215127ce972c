package repositories

import (
	"fmt"
	"sync"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/logger"
)

// Registry is the in-memory store of academics and courses.
// A single lock guards both containers so that checks and writes made by
// one call never interleave with another.
type Registry struct {
	mu sync.RWMutex

	academics     map[int64]*models.Academic
	academicOrder []int64
	courses       map[int64]*models.Course
	courseOrder   []int64

	academicIDs IDGenerator
	courseIDs   IDGenerator
}

// NewRegistry creates an empty registry using the given id generators
func NewRegistry(academicIDs, courseIDs IDGenerator) *Registry {
	if academicIDs == nil {
		academicIDs = &SequentialIDGenerator{}
	}
	if courseIDs == nil {
		courseIDs = &SequentialIDGenerator{}
	}

	return &Registry{
		academics:   make(map[int64]*models.Academic),
		courses:     make(map[int64]*models.Course),
		academicIDs: academicIDs,
		courseIDs:   courseIDs,
	}
}

// AddAcademic stores a copy of the academic under a fresh id and returns the id
func (r *Registry) AddAcademic(academic *models.Academic) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.academicIDs.Next(r.hasAcademic)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating academic id")
		return 0, fmt.Errorf("failed to generate academic id: %w", err)
	}

	stored := *academic
	stored.ID = id
	r.academics[id] = &stored
	r.academicOrder = append(r.academicOrder, id)

	return id, nil
}

// GetAcademic returns a copy of the academic with the given id
func (r *Registry) GetAcademic(id int64) (*models.Academic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	academic, ok := r.academics[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrAcademicNotFound, id)
	}

	clone := *academic
	return &clone, nil
}

// AcademicExists reports whether the id refers to a registered academic
func (r *Registry) AcademicExists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasAcademic(id)
}

// ListAcademics returns every academic in insertion order
func (r *Registry) ListAcademics() []*models.Academic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	academics := make([]*models.Academic, 0, len(r.academicOrder))
	for _, id := range r.academicOrder {
		clone := *r.academics[id]
		academics = append(academics, &clone)
	}
	return academics
}

// AddCourse creates a course owned by the given academic and returns its id.
// The creator is looked up before name and description are checked.
func (r *Registry) AddCourse(creatorID int64, name, description string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	creator, ok := r.academics[creatorID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrAcademicNotFound, creatorID)
	}

	course, err := models.NewCourse(creator, name, description)
	if err != nil {
		return 0, err
	}

	id, err := r.courseIDs.Next(r.hasCourse)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating course id")
		return 0, fmt.Errorf("failed to generate course id: %w", err)
	}

	course.ID = id
	r.courses[id] = course
	r.courseOrder = append(r.courseOrder, id)

	return id, nil
}

// GetCourse returns a deep copy of the course with the given id
func (r *Registry) GetCourse(id int64) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrCourseNotFound, id)
	}
	return course.Clone(), nil
}

// ListCourses returns every course in insertion order
func (r *Registry) ListCourses() []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]*models.Course, 0, len(r.courseOrder))
	for _, id := range r.courseOrder {
		courses = append(courses, r.courses[id].Clone())
	}
	return courses
}

// AddMember enrols a snapshot of the academic in the course
func (r *Registry) AddMember(courseID, academicID int64, isStaff bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	academic, ok := r.academics[academicID]
	if !ok {
		return fmt.Errorf("%w: %d", apperrors.ErrAcademicNotFound, academicID)
	}

	course, ok := r.courses[courseID]
	if !ok {
		return fmt.Errorf("%w: %d", apperrors.ErrCourseNotFound, courseID)
	}

	if err := course.Enrol(academic.Snapshot(), isStaff); err != nil {
		return fmt.Errorf("%w: academic %d, course %d", err, academicID, courseID)
	}
	return nil
}

// Counts returns the number of academics and courses held
func (r *Registry) Counts() (academics, courses int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.academics), len(r.courses)
}

// Clear removes every academic and course
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.academics = make(map[int64]*models.Academic)
	r.academicOrder = nil
	r.courses = make(map[int64]*models.Course)
	r.courseOrder = nil

	logger.Debug().Msg("Registry cleared")
}

func (r *Registry) hasAcademic(id int64) bool {
	_, ok := r.academics[id]
	return ok
}

func (r *Registry) hasCourse(id int64) bool {
	_, ok := r.courses[id]
	return ok
}
