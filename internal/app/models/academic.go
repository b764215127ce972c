package models

import "github.com/yigit/academics/internal/pkg/apperrors"

// Academic represents a person registered with the service.
type Academic struct {
	ID    int64  `json:"academicId"`
	Name  string `json:"name"`
	Hobby string `json:"hobby"`
}

// NewAcademic builds an academic record, rejecting empty fields.
// The ID is assigned by the registry on insertion.
func NewAcademic(name, hobby string) (*Academic, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if hobby == "" {
		return nil, apperrors.NewValidationError("hobby", "hobby is required")
	}
	return &Academic{Name: name, Hobby: hobby}, nil
}

// Snapshot returns the member view of the academic as it is right now.
func (a *Academic) Snapshot() Member {
	return Member{
		AcademicID: a.ID,
		Name:       a.Name,
		Hobby:      a.Hobby,
	}
}

// Summary returns the list view of the academic.
func (a *Academic) Summary() AcademicSummary {
	return AcademicSummary{AcademicID: a.ID, Name: a.Name}
}

// AcademicSummary is the brief form used by list operations.
type AcademicSummary struct {
	AcademicID int64  `json:"academicId"`
	Name       string `json:"name"`
}
