package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/academics/internal/app/repositories"
)

// Services holds every service the controllers depend on
type Services struct {
	Academic AcademicService
	Course   CourseService
	Admin    AdminService
}

// NewServices builds the services on top of the repositories
func NewServices(repos *repositories.Repositories, lgr zerolog.Logger) *Services {
	return &Services{
		Academic: NewAcademicService(repos.Registry, lgr),
		Course:   NewCourseService(repos.Registry, lgr),
		Admin:    NewAdminService(repos.Registry, lgr),
	}
}
