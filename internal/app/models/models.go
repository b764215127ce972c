package models

// RoleType describes how an academic takes part in a course
type RoleType string

const (
	RoleStaff  RoleType = "STAFF"
	RoleMember RoleType = "MEMBER"
)

// RoleFor maps the enrolment flag onto a role
func RoleFor(isStaff bool) RoleType {
	if isStaff {
		return RoleStaff
	}
	return RoleMember
}
