package ports

import (
	"context"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// SignupInput carries self-registration fields.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// RosterService manages enrollment of students and teachers.
type RosterService interface {
	// AddStudent enrolls a student under the acting teacher. The student
	// receives a generated 10-digit studentId, a zero balance, and an
	// identity-provider credential whose initial password is the studentId.
	AddStudent(ctx context.Context, actorID, name, email string) (*domain.User, error)

	// AddTeacher creates a teacher account with the given credential. Admin only.
	AddTeacher(ctx context.Context, actorID, name, email, password string) (*domain.User, error)

	// ListStudents returns all student records. Teacher or admin only.
	ListStudents(ctx context.Context, actorID string) ([]*domain.User, error)

	// Signup self-registers a user through the identity provider.
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
}
