// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// Role is the permission tier attached to a user. There is no hierarchy
// between roles: admin does not imply instructor.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// ParseRole maps a stored role value to a Role. Absent or unknown values are
// students.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleInstructor:
		return RoleInstructor
	default:
		return RoleStudent
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PhotoURL     string    `db:"photo_url"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) HasRole(role Role) bool {
	return ParseRole(string(u.Role)) == role
}
