package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleUser    = "user"
)

// Error message templates for role middleware
const (
	ErrOnlyTeachersCanAccess = "Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

/* ==========================
   Grouped role slices
========================== */

var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
