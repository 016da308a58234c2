// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserInfo struct {
	ID           string
	Email        string
	PasswordHash string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type PasswordVerifier interface {
	Hash(password string) (string, error)
	VerifyTimingSafe(password string, encodedHash *string) (bool, error)
	NeedsRehash(encodedHash string) bool
}

type RevocationStore interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

type Service struct {
	jwt          *JWTManager
	userProvider UserProvider
	passwords    PasswordVerifier
	revocations  RevocationStore
}

func NewService(
	jwt *JWTManager,
	userProvider UserProvider,
	passwords PasswordVerifier,
	revocations RevocationStore,
) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
		passwords:    passwords,
		revocations:  revocations,
	}
}

// IssueToken signs an access token for the user owning email once password
// matches the stored hash. Unknown emails and wrong passwords both return
// ErrInvalidCredentials after the same amount of hashing work.
func (s *Service) IssueToken(
	ctx context.Context,
	req TokenRequest,
) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userProvider.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention
			_, _ = s.passwords.VerifyTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := s.passwords.VerifyTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if s.passwords.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user.ID, req.Password)
	}

	signed, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &TokenResponse{
		Token:     signed.Token,
		TokenType: "Bearer",
		ExpiresIn: int(s.jwt.config.AccessTokenExpire / time.Second),
		ExpiresAt: signed.ExpiresAt,
	}, nil
}

func (s *Service) upgradeHash(ctx context.Context, userID, password string) {
	newHash, err := s.passwords.Hash(password)
	if err != nil {
		slog.WarnContext(ctx, "rehash password failed", "error", err)
		return
	}

	if err := s.userProvider.UpdatePassword(ctx, userID, newHash); err != nil {
		slog.WarnContext(ctx, "store upgraded password hash failed",
			"user_id", userID,
			"error", err,
		)
	}
}

// VerifyAccessToken validates the token and rejects it when its id has been
// revoked.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifyAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if claims.TokenID == "" {
		return claims, nil
	}

	revoked, err := s.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}

	if revoked {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return claims, nil
}

func (s *Service) Revoke(
	ctx context.Context,
	jti string,
	expiresAt time.Time,
) error {
	if jti == "" {
		return fmt.Errorf("revoke: %w", core.ErrTokenInvalid)
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	return s.revocations.BlacklistToken(ctx, jti, ttl)
}

func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revocations.IsTokenBlacklisted(ctx, jti)
}

var _ middleware.TokenVerifier = (*Service)(nil)
