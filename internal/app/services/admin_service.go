package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/academics/internal/app/repositories"
)

// RegistryStats reports how much the registry holds
type RegistryStats struct {
	Academics int `json:"academics"`
	Courses   int `json:"courses"`
}

// AdminService covers operations on the registry as a whole
type AdminService interface {
	Clear(ctx context.Context)
	Stats(ctx context.Context) RegistryStats
}

type adminServiceImpl struct {
	registry *repositories.Registry
	logger   zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(registry *repositories.Registry, lgr zerolog.Logger) AdminService {
	return &adminServiceImpl{
		registry: registry,
		logger:   lgr.With().Str("service", "admin").Logger(),
	}
}

// Clear empties the registry. It always succeeds.
func (s *adminServiceImpl) Clear(ctx context.Context) {
	academics, courses := s.registry.Counts()
	s.registry.Clear()
	s.logger.Warn().Int("academics", academics).Int("courses", courses).Msg("Registry cleared")
}

func (s *adminServiceImpl) Stats(ctx context.Context) RegistryStats {
	academics, courses := s.registry.Counts()
	return RegistryStats{Academics: academics, Courses: courses}
}
