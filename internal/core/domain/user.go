package domain

import "time"

// Role classifies every actor in the platform.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// User models any actor in the system. CoinBalance and StudentID are only
// meaningful for role=student; TeacherID references the enrolling teacher's
// ID as a lookup, not ownership (deleting a teacher does not cascade).
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
	CoinBalance int       `json:"coinBalance"`
	StudentID   string    `json:"studentId,omitempty"`
	TeacherID   string    `json:"teacherId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Credential is a login record held by the identity provider store,
// separate from the user record itself.
type Credential struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
