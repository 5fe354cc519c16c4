package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

func newRosterFixture() (*RosterService, *memStore, *memCredentials) {
	store := newMemStore()
	creds := newMemCredentials()
	store.users["admin"] = &domain.User{ID: "admin", Role: domain.RoleAdmin, CreatedAt: time.Now().UTC()}
	store.users["teach"] = &domain.User{ID: "teach", Role: domain.RoleTeacher, CreatedAt: time.Now().UTC()}
	svc := NewRosterService(store, creds, zerolog.Nop())
	return svc, store, creds
}

func TestRosterService_AddStudent(t *testing.T) {
	svc, store, creds := newRosterFixture()

	student, err := svc.AddStudent(context.Background(), "teach", "Ali Valiyev", "ali@example.com")
	if err != nil {
		t.Fatalf("AddStudent returned error: %v", err)
	}
	if len(student.StudentID) != 10 {
		t.Fatalf("studentId must be 10 digits, got %q", student.StudentID)
	}
	for _, r := range student.StudentID {
		if r < '0' || r > '9' {
			t.Fatalf("studentId must be numeric, got %q", student.StudentID)
		}
	}
	if student.CoinBalance != 0 {
		t.Fatalf("new student balance must be 0, got %d", student.CoinBalance)
	}
	if student.TeacherID != "teach" {
		t.Fatalf("teacherId = %q, want teach", student.TeacherID)
	}

	stored, err := store.FindByStudentID(context.Background(), student.StudentID)
	if err != nil {
		t.Fatalf("student not findable by studentId: %v", err)
	}
	if stored.ID != student.ID {
		t.Fatal("index resolved the wrong record")
	}

	// The initial password is the studentId.
	cred, err := creds.FindByEmail(context.Background(), "ali@example.com")
	if err != nil {
		t.Fatalf("credential not created: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(student.StudentID)) != nil {
		t.Fatal("credential password must be the studentId")
	}
}

func TestRosterService_AddStudent_Authorization(t *testing.T) {
	svc, store, _ := newRosterFixture()
	store.users["stud"] = &domain.User{ID: "stud", Role: domain.RoleStudent, StudentID: "1111111111"}

	for _, actor := range []string{"admin", "stud", "ghost"} {
		if _, err := svc.AddStudent(context.Background(), actor, "X", "x@example.com"); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Errorf("actor %q: expected ErrNotAuthorized, got %v", actor, err)
		}
	}
}

func TestRosterService_AddStudent_DuplicateEmail(t *testing.T) {
	svc, _, _ := newRosterFixture()

	if _, err := svc.AddStudent(context.Background(), "teach", "A", "same@example.com"); err != nil {
		t.Fatalf("first enrollment failed: %v", err)
	}
	if _, err := svc.AddStudent(context.Background(), "teach", "B", "same@example.com"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRosterService_AddTeacher(t *testing.T) {
	svc, store, creds := newRosterFixture()

	teacher, err := svc.AddTeacher(context.Background(), "admin", "Nodira Karimova", "nodira@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("AddTeacher returned error: %v", err)
	}
	if teacher.Role != domain.RoleTeacher {
		t.Fatalf("role = %s, want teacher", teacher.Role)
	}
	if teacher.StudentID != "" {
		t.Fatal("teacher must not carry a studentId")
	}
	if _, err := store.Get(context.Background(), teacher.ID); err != nil {
		t.Fatalf("teacher record not persisted: %v", err)
	}

	cred, err := creds.FindByEmail(context.Background(), "nodira@example.com")
	if err != nil {
		t.Fatalf("credential not created: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatal("stored hash does not match password")
	}
}

func TestRosterService_AddTeacher_Authorization(t *testing.T) {
	svc, _, _ := newRosterFixture()

	if _, err := svc.AddTeacher(context.Background(), "teach", "X", "x@example.com", "pass"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("teacher actor: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.AddTeacher(context.Background(), "admin", "X", "x@example.com", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing password: expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_ListStudents(t *testing.T) {
	svc, store, _ := newRosterFixture()
	store.users["s1"] = &domain.User{ID: "s1", Role: domain.RoleStudent, StudentID: "1111111111"}
	store.users["s2"] = &domain.User{ID: "s2", Role: domain.RoleStudent, StudentID: "2222222222"}

	for _, actor := range []string{"teach", "admin"} {
		students, err := svc.ListStudents(context.Background(), actor)
		if err != nil {
			t.Fatalf("actor %q: %v", actor, err)
		}
		if len(students) != 2 {
			t.Fatalf("expected 2 students, got %d", len(students))
		}
		for _, s := range students {
			if s.Role != domain.RoleStudent {
				t.Fatalf("non-student in listing: %+v", s)
			}
		}
	}

	if _, err := svc.ListStudents(context.Background(), "s1"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("student actor: expected ErrNotAuthorized, got %v", err)
	}
}

func TestRosterService_Signup(t *testing.T) {
	svc, store, _ := newRosterFixture()

	student, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "new@example.com",
		Password: "pass1234",
		Name:     "New Student",
		Role:     domain.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if len(student.StudentID) != 10 || student.CoinBalance != 0 {
		t.Fatalf("unexpected student record: %+v", student)
	}
	if _, err := store.FindByStudentID(context.Background(), student.StudentID); err != nil {
		t.Fatalf("student not indexed: %v", err)
	}

	teacher, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "t@example.com",
		Password: "pass1234",
		Name:     "T",
		Role:     domain.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("teacher signup failed: %v", err)
	}
	if teacher.StudentID != "" {
		t.Fatal("teacher must not get a studentId")
	}
}

func TestRosterService_Signup_Validation(t *testing.T) {
	svc, _, _ := newRosterFixture()

	cases := []ports.SignupInput{
		{Email: "", Password: "p", Name: "n", Role: domain.RoleStudent},
		{Email: "e@example.com", Password: "", Name: "n", Role: domain.RoleStudent},
		{Email: "e@example.com", Password: "p", Name: "", Role: domain.RoleStudent},
		{Email: "e@example.com", Password: "p", Name: "n", Role: "wizard"},
	}
	for i, in := range cases {
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestRandomStudentID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := randomStudentID()
		if len(id) != 10 {
			t.Fatalf("id %q is not 10 digits", id)
		}
		if id[0] == '0' {
			t.Fatalf("id %q has a leading zero", id)
		}
		seen[id] = true
	}
	if len(seen) < 90 {
		t.Fatalf("ids look non-random: only %d unique of 100", len(seen))
	}
}
