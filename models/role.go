package models

// Role identifies which kind of account a person record (or a token claim)
// belongs to. Exactly one role is attached to every issued token.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// Prefix is the leading letter of the role's sequential public ID (A1000...).
func (r Role) Prefix() string {
	switch r {
	case RoleAdmin:
		return "A"
	case RoleFaculty:
		return "F"
	default:
		return "S"
	}
}

// Collection is the MongoDB collection holding this role's person documents.
func (r Role) Collection() string {
	switch r {
	case RoleAdmin:
		return "admins"
	case RoleFaculty:
		return "faculties"
	default:
		return "students"
	}
}

// ClaimKey is the JWT claim carrying the role's public ID.
func (r Role) ClaimKey() string {
	switch r {
	case RoleAdmin:
		return "adminId"
	case RoleFaculty:
		return "facultyId"
	default:
		return "studentId"
	}
}

func (r Role) String() string { return string(r) }
