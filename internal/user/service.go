// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/sports-academy/internal/auth"
	"github.com/carterperez-dev/sports-academy/internal/core"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register creates the user on first sign-up. A second call with the same
// email is a no-op and reports created=false. Known emails return before the
// password is hashed; the insert still absorbs a concurrent first sign-up.
func (s *Service) Register(
	ctx context.Context,
	req CreateUserRequest,
) (*User, bool, error) {
	email := normalizeEmail(req.Email)

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, false, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, false, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PhotoURL:     req.PhotoURL,
		PasswordHash: passwordHash,
		Role:         RoleStudent,
	}

	created, err := s.repo.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}

	if !created {
		return nil, false, nil
	}

	return user, true, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// ListInstructors is the instructor view: users whose role is instructor.
func (s *Service) ListInstructors(ctx context.Context) ([]User, error) {
	return s.repo.ListByRole(ctx, RoleInstructor)
}

func (s *Service) Promote(ctx context.Context, id string, role Role) (*User, error) {
	if role != RoleAdmin && role != RoleInstructor {
		return nil, fmt.Errorf(
			"promote: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	if !core.IsValidID(id) {
		return nil, fmt.Errorf("promote: %w", core.ErrNotFound)
	}

	return s.repo.UpdateRole(ctx, id, role)
}

// RoleOf returns the stored role for email, or core.ErrNotFound.
func (s *Service) RoleOf(ctx context.Context, email string) (Role, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	return ParseRole(string(user.Role)), nil
}

// HasRole resolves a missing user to false rather than an error.
func (s *Service) HasRole(
	ctx context.Context,
	email string,
	role Role,
) (bool, error) {
	current, err := s.RoleOf(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return current == role, nil
}

func (s *Service) CountByRole(ctx context.Context) (map[Role]int, error) {
	return s.repo.CountByRole(ctx)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

var _ auth.UserProvider = (*Service)(nil)
