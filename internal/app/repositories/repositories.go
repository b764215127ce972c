package repositories

import "fmt"

// Options configures how the registry allocates identifiers
type Options struct {
	IDStrategy    string
	AcademicIDMax int64
	CourseIDMax   int64
}

// Repositories holds all the repository instances
type Repositories struct {
	Registry *Registry
}

// NewRepositories initializes all repositories
func NewRepositories(opts Options) (*Repositories, error) {
	academicIDs, err := NewIDGenerator(opts.IDStrategy, opts.AcademicIDMax)
	if err != nil {
		return nil, fmt.Errorf("academic ids: %w", err)
	}
	courseIDs, err := NewIDGenerator(opts.IDStrategy, opts.CourseIDMax)
	if err != nil {
		return nil, fmt.Errorf("course ids: %w", err)
	}

	return &Repositories{
		Registry: NewRegistry(academicIDs, courseIDs),
	}, nil
}
