package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/authz"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

const studentIDAttempts = 5

// RosterService enrolls students and teachers. Enrollment creates both an
// identity-provider credential and a user record in the record store.
type RosterService struct {
	users  ports.UserRepository
	creds  ports.CredentialRepository
	logger zerolog.Logger
}

func NewRosterService(users ports.UserRepository, creds ports.CredentialRepository, logger zerolog.Logger) *RosterService {
	return &RosterService{users: users, creds: creds, logger: logger}
}

// AddStudent enrolls a student under the acting teacher. The generated
// studentId doubles as the student's initial password.
func (s *RosterService) AddStudent(ctx context.Context, actorID, name, email string) (*domain.User, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return nil, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpAddStudent) {
		return nil, domain.ErrNotAuthorized
	}

	studentID, err := s.uniqueStudentID(ctx)
	if err != nil {
		return nil, fmt.Errorf("add student: %w", err)
	}

	student := &domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        name,
		Role:        domain.RoleStudent,
		CoinBalance: 0,
		StudentID:   studentID,
		TeacherID:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.createCredential(ctx, student.ID, email, studentID); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, student); err != nil {
		return nil, fmt.Errorf("add student: save record: %w", err)
	}

	s.logger.Info().
		Str("student_id", studentID).
		Str("teacher_id", actor.ID).
		Str("email", email).
		Msg("student enrolled")

	return student, nil
}

// AddTeacher creates a teacher account. Admin only.
func (s *RosterService) AddTeacher(ctx context.Context, actorID, name, email, password string) (*domain.User, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return nil, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpAddTeacher) {
		return nil, domain.ErrNotAuthorized
	}
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	teacher := &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      domain.RoleTeacher,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.createCredential(ctx, teacher.ID, email, password); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, teacher); err != nil {
		return nil, fmt.Errorf("add teacher: save record: %w", err)
	}

	s.logger.Info().Str("teacher_id", teacher.ID).Str("email", email).Msg("teacher added")
	return teacher, nil
}

// ListStudents returns all student records. Teacher or admin only.
func (s *RosterService) ListStudents(ctx context.Context, actorID string) ([]*domain.User, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return nil, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpListStudents) {
		return nil, domain.ErrNotAuthorized
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	students := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleStudent {
			students = append(students, u)
		}
	}
	return students, nil
}

// Signup self-registers a user through the identity provider. Students get a
// generated studentId and a zero balance.
func (s *RosterService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" || !in.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Name:      in.Name,
		Role:      in.Role,
		CreatedAt: time.Now().UTC(),
	}
	if in.Role == domain.RoleStudent {
		studentID, err := s.uniqueStudentID(ctx)
		if err != nil {
			return nil, fmt.Errorf("signup: %w", err)
		}
		user.StudentID = studentID
		user.CoinBalance = 0
	}

	if err := s.createCredential(ctx, user.ID, in.Email, in.Password); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: save record: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user signed up")
	return user, nil
}

func (s *RosterService) createCredential(ctx context.Context, userID, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	cred := &domain.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

// uniqueStudentID draws random 10-digit ids until one is free. The id space
// is nine billion wide, so collisions beyond the retry budget indicate a
// store problem rather than bad luck.
func (s *RosterService) uniqueStudentID(ctx context.Context) (string, error) {
	for i := 0; i < studentIDAttempts; i++ {
		id := randomStudentID()
		_, err := s.users.FindByStudentID(ctx, id)
		if errors.Is(err, domain.ErrStudentNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not allocate a unique student id after %d attempts", studentIDAttempts)
}

// randomStudentID returns a random numeric string in [1000000000, 9999999999].
func randomStudentID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9_000_000_000))
	if err != nil {
		// fallback: derive from the clock
		return strconv.FormatInt(1_000_000_000+time.Now().UnixNano()%9_000_000_000, 10)
	}
	return strconv.FormatInt(1_000_000_000+n.Int64(), 10)
}
