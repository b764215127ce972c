package models

import (
	"github.com/yigit/academics/internal/pkg/apperrors"
)

// Member is a copy of an academic's details taken when they joined a course.
type Member struct {
	AcademicID int64  `json:"academicId"`
	Name       string `json:"name"`
	Hobby      string `json:"hobby"`
}

// Course represents a named offering together with its enrolments.
type Course struct {
	ID          int64  `json:"courseId"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Both lists are in enrolment order. AllMembers always contains
	// every entry of StaffMembers.
	StaffMembers []Member `json:"staffMembers"`
	AllMembers   []Member `json:"allMembers"`
}

// NewCourse builds a course whose creator is its first staff member and
// first member. The ID is assigned by the registry on insertion.
func NewCourse(creator *Academic, name, description string) (*Course, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if description == "" {
		return nil, apperrors.NewValidationError("description", "description is required")
	}

	snapshot := creator.Snapshot()
	return &Course{
		Name:         name,
		Description:  description,
		StaffMembers: []Member{snapshot},
		AllMembers:   []Member{snapshot},
	}, nil
}

// HasMember reports whether the academic is enrolled in the course.
func (c *Course) HasMember(academicID int64) bool {
	for _, m := range c.AllMembers {
		if m.AcademicID == academicID {
			return true
		}
	}
	return false
}

// HasStaff reports whether the academic is enrolled as staff.
func (c *Course) HasStaff(academicID int64) bool {
	for _, m := range c.StaffMembers {
		if m.AcademicID == academicID {
			return true
		}
	}
	return false
}

// Enrol appends a member to the course, and to the staff list when isStaff
// is set.
func (c *Course) Enrol(member Member, isStaff bool) error {
	if c.HasMember(member.AcademicID) {
		return apperrors.ErrAlreadyEnrolled
	}
	if isStaff {
		c.StaffMembers = append(c.StaffMembers, member)
	}
	c.AllMembers = append(c.AllMembers, member)
	return nil
}

// Clone returns a deep copy so callers cannot reach into registry state.
func (c *Course) Clone() *Course {
	clone := *c
	clone.StaffMembers = append([]Member(nil), c.StaffMembers...)
	clone.AllMembers = append([]Member(nil), c.AllMembers...)
	return &clone
}

// Summary returns the list view of the course.
func (c *Course) Summary() CourseSummary {
	return CourseSummary{CourseID: c.ID, Name: c.Name}
}

// CourseSummary is the brief form used by list operations.
type CourseSummary struct {
	CourseID int64  `json:"courseId"`
	Name     string `json:"name"`
}

// RoleOf returns the academic's role in the course, or "" when not enrolled.
func (c *Course) RoleOf(academicID int64) RoleType {
	switch {
	case c.HasStaff(academicID):
		return RoleStaff
	case c.HasMember(academicID):
		return RoleMember
	default:
		return ""
	}
}
