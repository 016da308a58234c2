// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

func TestService_Register(t *testing.T) {
	var stored *User
	repo := &mockRepository{
		createIfAbsentFunc: func(_ context.Context, u *User) (bool, error) {
			stored = u
			return true, nil
		},
	}
	svc := NewService(repo, plainHasher{})

	u, created, err := svc.Register(context.Background(), CreateUserRequest{
		Email:    " New@Example.com ",
		Password: "password123",
		Name:     "  Kim ",
	})
	if err != nil || !created {
		t.Fatalf("Register = %v, %v", created, err)
	}

	if u.Email != "new@example.com" || u.Name != "Kim" {
		t.Errorf("user not normalized: %+v", u)
	}
	if u.Role != RoleStudent {
		t.Errorf("role = %q, want student", u.Role)
	}
	if stored.PasswordHash != "hashed:password123" {
		t.Errorf("password stored as %q", stored.PasswordHash)
	}
	if !core.IsValidID(u.ID) {
		t.Errorf("id %q is not a uuid", u.ID)
	}
}

// A concurrent sign-up can win between the lookup and the insert.
func TestService_RegisterLosesInsertRace(t *testing.T) {
	repo := &mockRepository{
		createIfAbsentFunc: func(context.Context, *User) (bool, error) {
			return false, nil
		},
	}
	svc := NewService(repo, plainHasher{})

	u, created, err := svc.Register(context.Background(), CreateUserRequest{
		Email: "a@b.com", Password: "password123",
	})
	if err != nil || created || u != nil {
		t.Errorf("Register existing = %v, %v, %v", u, created, err)
	}
}

type countingHasher struct {
	calls int
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.calls++
	return "hashed:" + password, nil
}

func TestService_RegisterKnownEmailSkipsHashing(t *testing.T) {
	inserted := false
	repo := &mockRepository{
		getByEmailFunc: usersByEmail(User{ID: "u1", Email: "a@b.com"}),
		createIfAbsentFunc: func(context.Context, *User) (bool, error) {
			inserted = true
			return true, nil
		},
	}
	hasher := &countingHasher{}
	svc := NewService(repo, hasher)

	u, created, err := svc.Register(context.Background(), CreateUserRequest{
		Email: " A@B.com", Password: "password123",
	})
	if err != nil || created || u != nil {
		t.Fatalf("Register known = %v, %v, %v", u, created, err)
	}
	if hasher.calls != 0 || inserted {
		t.Errorf("hash calls = %d, inserted = %v", hasher.calls, inserted)
	}
}

func TestService_RegisterLookupFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &mockRepository{
		getByEmailFunc: func(context.Context, string) (*User, error) {
			return nil, storeErr
		},
	}
	hasher := &countingHasher{}

	_, _, err := NewService(repo, hasher).Register(context.Background(), CreateUserRequest{
		Email: "a@b.com", Password: "password123",
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want store error", err)
	}
	if hasher.calls != 0 {
		t.Errorf("hashed despite lookup failure")
	}
}

func TestService_Promote(t *testing.T) {
	id := "6f1c2b7e-4d1a-4b0f-9a51-2f0e3b1c9d10"
	repo := &mockRepository{
		updateRoleFunc: func(_ context.Context, gotID string, role Role) (*User, error) {
			return &User{ID: gotID, Role: role}, nil
		},
	}
	svc := NewService(repo, plainHasher{})

	u, err := svc.Promote(context.Background(), id, RoleInstructor)
	if err != nil || u.Role != RoleInstructor {
		t.Fatalf("Promote = %+v, %v", u, err)
	}

	if _, err := svc.Promote(context.Background(), "bogus", RoleAdmin); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("malformed id err = %v, want ErrNotFound", err)
	}

	if _, err := svc.Promote(context.Background(), id, RoleStudent); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("demotion err = %v, want ErrInvalidInput", err)
	}
}

func TestService_HasRole(t *testing.T) {
	repo := &mockRepository{
		getByEmailFunc: usersByEmail(
			User{Email: "admin@example.com", Role: RoleAdmin},
			User{Email: "coach@example.com", Role: RoleInstructor},
		),
	}
	svc := NewService(repo, plainHasher{})
	ctx := context.Background()

	tests := []struct {
		email string
		role  Role
		want  bool
	}{
		{"admin@example.com", RoleAdmin, true},
		{"ADMIN@example.com", RoleAdmin, true},
		{"admin@example.com", RoleInstructor, false},
		{"coach@example.com", RoleInstructor, true},
		{"coach@example.com", RoleAdmin, false},
		{"ghost@example.com", RoleAdmin, false},
	}

	for _, tt := range tests {
		got, err := svc.HasRole(ctx, tt.email, tt.role)
		if err != nil {
			t.Fatalf("HasRole(%s, %s): %v", tt.email, tt.role, err)
		}
		if got != tt.want {
			t.Errorf("HasRole(%s, %s) = %v, want %v", tt.email, tt.role, got, tt.want)
		}
	}
}

func TestService_GetByEmailForAuth(t *testing.T) {
	repo := &mockRepository{
		getByEmailFunc: usersByEmail(User{
			ID: "u1", Email: "a@b.com", PasswordHash: "h",
		}),
	}
	svc := NewService(repo, plainHasher{})

	info, err := svc.GetByEmail(context.Background(), "A@B.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if info.ID != "u1" || info.PasswordHash != "h" {
		t.Errorf("info = %+v", info)
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("admin") != RoleAdmin || ParseRole("instructor") != RoleInstructor {
		t.Error("known roles not parsed")
	}
	if ParseRole("superuser") != RoleStudent {
		t.Error("unknown role did not default to student")
	}
}
