package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"task-allocation/internal/domain/user"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error
	updateErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role user.Role) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	u, ok := m.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Role = &role
	m.byID[id] = u
	m.byEmail[u.Email] = u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		Email:     "  Jesse@Example.com ",
		FirstName: " Jesse ",
		Password:  "longenough",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Email != "jesse@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.FirstName != "Jesse" {
		t.Fatalf("expected trimmed first name, got %q", created.FirstName)
	}
	if created.PasswordHash != "" {
		t.Fatalf("password hash leaked from Register")
	}

	logged, err := svc.Login(ctx, LoginInput{Email: "jesse@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("expected same user, got %s vs %s", logged.ID, created.ID)
	}
	if logged.PasswordHash != "" {
		t.Fatalf("password hash leaked from Login")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMockUserRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing at sign", RegisterInput{Email: "not-an-email", Password: "longenough"}},
		{"blank email", RegisterInput{Email: "   ", Password: "longenough"}},
		{"short password", RegisterInput{Email: "a@b.com", Password: "short"}},
	}
	for _, tc := range cases {
		if _, err := svc.Register(ctx, tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	in := RegisterInput{Email: "dup@example.com", Password: "longenough"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "longenough"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "wrongwrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "nobody@b.com", Password: "longenough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestSelectRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := svc.SelectRole(ctx, created.ID, "supervisor")
	if err != nil {
		t.Fatalf("select role: %v", err)
	}
	if updated.Role == nil || *updated.Role != user.RoleSupervisor {
		t.Fatalf("expected supervisor role persisted, got %+v", updated.Role)
	}

	// Role can be changed later.
	updated, err = svc.SelectRole(ctx, created.ID, "employee")
	if err != nil {
		t.Fatalf("select role again: %v", err)
	}
	if updated.Role == nil || *updated.Role != user.RoleEmployee {
		t.Fatalf("expected employee role persisted, got %+v", updated.Role)
	}

	if _, err := svc.SelectRole(ctx, created.ID, "admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.SelectRole(ctx, uuid.New(), "employee"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown user, got %v", err)
	}
}
