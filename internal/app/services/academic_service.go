package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/repositories"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

// AcademicService defines the interface for academic-related operations
type AcademicService interface {
	CreateAcademic(ctx context.Context, name, hobby string) (int64, error)
	GetAcademicDetails(ctx context.Context, requesterID, academicToViewID int64) (*models.Academic, error)
	ListAcademics(ctx context.Context, requesterID int64) ([]models.AcademicSummary, error)
	AcademicExists(ctx context.Context, academicID int64) bool
}

// academicServiceImpl implements the AcademicService interface
type academicServiceImpl struct {
	registry *repositories.Registry
	logger   zerolog.Logger
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(registry *repositories.Registry, lgr zerolog.Logger) AcademicService {
	return &academicServiceImpl{
		registry: registry,
		logger:   lgr.With().Str("service", "academic").Logger(),
	}
}

// CreateAcademic registers a new academic and returns its id
func (s *academicServiceImpl) CreateAcademic(ctx context.Context, name, hobby string) (int64, error) {
	academic, err := models.NewAcademic(name, hobby)
	if err != nil {
		return 0, err
	}

	id, err := s.registry.AddAcademic(academic)
	if err != nil {
		return 0, fmt.Errorf("error creating academic: %w", err)
	}

	s.logger.Info().Int64("academicId", id).Str("name", name).Msg("Academic created")
	return id, nil
}

// GetAcademicDetails returns the academic to view. The requester only has to
// exist, any registered academic may view any other.
func (s *academicServiceImpl) GetAcademicDetails(ctx context.Context, requesterID, academicToViewID int64) (*models.Academic, error) {
	if err := requireAcademic(s.registry, requesterID); err != nil {
		return nil, err
	}

	academic, err := s.registry.GetAcademic(academicToViewID)
	if err != nil {
		return nil, err
	}
	return academic, nil
}

// ListAcademics returns every academic in registration order
func (s *academicServiceImpl) ListAcademics(ctx context.Context, requesterID int64) ([]models.AcademicSummary, error) {
	if err := requireAcademic(s.registry, requesterID); err != nil {
		return nil, err
	}

	academics := s.registry.ListAcademics()
	summaries := make([]models.AcademicSummary, 0, len(academics))
	for _, a := range academics {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// AcademicExists reports whether the academic is registered
func (s *academicServiceImpl) AcademicExists(ctx context.Context, academicID int64) bool {
	return s.registry.AcademicExists(academicID)
}

// requireAcademic fails with ErrAcademicNotFound unless the requester is registered
func requireAcademic(registry *repositories.Registry, academicID int64) error {
	if !registry.AcademicExists(academicID) {
		return fmt.Errorf("%w: %d", apperrors.ErrAcademicNotFound, academicID)
	}
	return nil
}
