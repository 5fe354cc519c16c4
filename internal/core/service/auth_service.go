package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// Fixed demo identities. The tokens are an external contract with the UI and
// bypass the identity provider entirely.
const (
	DemoAdminToken   = "demo-admin-token"
	DemoTeacherToken = "demo-teacher-token"

	DefaultAdminID   = "admin-default"
	DefaultTeacherID = "teacher-default"

	demoAdminEmail      = "admin@gmail.com"
	demoAdminPassword   = "admin1234"
	demoTeacherEmail    = "teacher@gmail.com"
	demoTeacherPassword = "teacher1234"
)

// AuthService handles login and bearer-token resolution. It recognizes the
// two fixed demo identities and delegates everything else to the credential
// store plus HS256 JWTs.
type AuthService struct {
	users     ports.UserRepository
	creds     ports.CredentialRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	creds ports.CredentialRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, creds: creds, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates by email/password. Demo credentials return the fixed
// demo token and re-seed the demo record if it went missing; all other
// credentials are checked against the store and earn a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if email == demoAdminEmail && password == demoAdminPassword {
		user, err := s.ensureDemoAccount(ctx, defaultAdminRecord())
		if err != nil {
			return "", nil, err
		}
		return DemoAdminToken, user, nil
	}
	if email == demoTeacherEmail && password == demoTeacherPassword {
		user, err := s.ensureDemoAccount(ctx, defaultTeacherRecord())
		if err != nil {
			return "", nil, err
		}
		return DemoTeacherToken, user, nil
	}

	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.Get(ctx, cred.UserID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// LoginStudent looks a student up by studentId. No token is issued; student
// sessions are kept client-side, as in the reference UI.
func (s *AuthService) LoginStudent(ctx context.Context, studentID string) (*domain.User, error) {
	return s.users.FindByStudentID(ctx, studentID)
}

// Resolve maps a bearer token to a user record. Demo tokens resolve to the
// seeded demo identities; anything else must be a valid JWT whose subject
// still exists in the record store.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	switch token {
	case DemoAdminToken:
		return s.resolveFixed(ctx, DefaultAdminID)
	case DemoTeacherToken:
		return s.resolveFixed(ctx, DefaultTeacherID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrNotAuthenticated
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.users.Get(ctx, sub)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

func (s *AuthService) resolveFixed(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

func (s *AuthService) ensureDemoAccount(ctx context.Context, seed *domain.User) (*domain.User, error) {
	user, err := s.users.Get(ctx, seed.ID)
	if errors.Is(err, domain.ErrUserNotFound) {
		if saveErr := s.users.Save(ctx, seed); saveErr != nil {
			return nil, saveErr
		}
		s.logger.Info().Str("user_id", seed.ID).Msg("demo account re-created on login")
		return seed, nil
	}
	if err != nil {
		return nil, err
	}
	// Keep the canonical email on the seeded record.
	if user.Email != seed.Email {
		user.Email = seed.Email
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"role":  string(user.Role),
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
