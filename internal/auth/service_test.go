// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type mockUserProvider struct {
	getByEmailFunc     func(ctx context.Context, email string) (*UserInfo, error)
	updatePasswordFunc func(ctx context.Context, userID, passwordHash string) error
}

func (m *mockUserProvider) GetByEmail(ctx context.Context, email string) (*UserInfo, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (m *mockUserProvider) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, userID, passwordHash)
	}
	return nil
}

type testEnv struct {
	service *Service
	users   *mockUserProvider
	hasher  *core.PasswordHasher
	redis   *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hasher, err := core.NewPasswordHasher(core.ArgonParams{
		Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32,
	})
	if err != nil {
		t.Fatalf("NewPasswordHasher: %v", err)
	}

	users := &mockUserProvider{}
	svc := NewService(newTestJWTManager(t, testJWTConfig()), users, hasher, &core.Redis{Client: rdb})

	return &testEnv{service: svc, users: users, hasher: hasher, redis: mr}
}

func (e *testEnv) withUser(t *testing.T, email, password string) {
	t.Helper()
	hash, err := e.hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	e.users.getByEmailFunc = func(_ context.Context, got string) (*UserInfo, error) {
		if got != email {
			return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
		}
		return &UserInfo{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}
}

func TestService_IssueToken(t *testing.T) {
	env := newTestEnv(t)
	env.withUser(t, "student@example.com", "password123")

	resp, err := env.service.IssueToken(context.Background(), TokenRequest{
		Email:    "  Student@Example.com ",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if resp.Token == "" || resp.TokenType != "Bearer" || resp.ExpiresIn != 3600 {
		t.Errorf("unexpected response %+v", resp)
	}

	claims, err := env.service.VerifyAccessToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.Email != "student@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestService_IssueTokenRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.withUser(t, "student@example.com", "password123")

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "student@example.com", "password124"},
		{"unknown email", "ghost@example.com", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.IssueToken(context.Background(), TokenRequest{
				Email:    tt.email,
				Password: tt.pass,
			})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestService_IssueTokenUpgradesStaleHash(t *testing.T) {
	env := newTestEnv(t)

	weak, err := core.NewPasswordHasher(core.ArgonParams{
		Time: 1, Memory: 4 * 1024, Threads: 1, KeyLen: 32,
	})
	if err != nil {
		t.Fatalf("NewPasswordHasher: %v", err)
	}
	staleHash, _ := weak.Hash("password123")

	env.users.getByEmailFunc = func(context.Context, string) (*UserInfo, error) {
		return &UserInfo{ID: "user-1", Email: "a@b.com", PasswordHash: staleHash}, nil
	}

	var upgraded string
	env.users.updatePasswordFunc = func(_ context.Context, _ string, hash string) error {
		upgraded = hash
		return nil
	}

	if _, err := env.service.IssueToken(context.Background(), TokenRequest{
		Email: "a@b.com", Password: "password123",
	}); err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if upgraded == "" || env.hasher.NeedsRehash(upgraded) {
		t.Errorf("hash not upgraded to current params: %q", upgraded)
	}
}

func TestService_RevokeBlacklistsToken(t *testing.T) {
	env := newTestEnv(t)
	env.withUser(t, "student@example.com", "password123")
	ctx := context.Background()

	resp, err := env.service.IssueToken(ctx, TokenRequest{
		Email: "student@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := env.service.VerifyAccessToken(ctx, resp.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}

	if err := env.service.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	ttl := env.redis.TTL(core.TokenBlacklistKey(claims.TokenID))
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("blacklist ttl = %v, want within token lifetime", ttl)
	}

	_, err = env.service.VerifyAccessToken(ctx, resp.Token)
	if !errors.Is(err, core.ErrTokenRevoked) {
		t.Errorf("err = %v, want ErrTokenRevoked", err)
	}
}

func TestService_RevokeExpiredIsNoop(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.Revoke(context.Background(), "old-jti", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if env.redis.Exists(core.TokenBlacklistKey("old-jti")) {
		t.Error("expired token written to blacklist")
	}
}

func TestService_VerifyFailsWhenStoreDown(t *testing.T) {
	env := newTestEnv(t)
	env.withUser(t, "student@example.com", "password123")

	resp, err := env.service.IssueToken(context.Background(), TokenRequest{
		Email: "student@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	down := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = down.Close() })

	svc := NewService(env.service.jwt, env.users, env.hasher, &core.Redis{Client: down})

	_, err = svc.VerifyAccessToken(context.Background(), resp.Token)
	if err == nil {
		t.Fatal("expected error with blacklist store unavailable")
	}
	if errors.Is(err, core.ErrTokenInvalid) || errors.Is(err, core.ErrTokenRevoked) {
		t.Errorf("store failure reported as token problem: %v", err)
	}
}
