// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/sports-academy/internal/middleware"
)

func newTestRouter(env *testEnv) chi.Router {
	r := chi.NewRouter()
	NewHandler(env.service).RegisterRoutes(r, middleware.Authenticator(env.service))
	return r
}

func postJSON(r http.Handler, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_IssueToken(t *testing.T) {
	env := newTestEnv(t)
	env.withUser(t, "student@example.com", "password123")
	router := newTestRouter(env)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"email":"student@example.com","password":"password123"}`, http.StatusOK},
		{"wrong password", `{"email":"student@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"email only", `{"email":"student@example.com"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(router, "/jwt", tt.body, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}

			if tt.wantStatus == http.StatusOK {
				var resp TokenResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if resp.Token == "" {
					t.Error("empty token")
				}
			}
		})
	}
}

func TestHandler_Revoke(t *testing.T) {
	env := newTestEnv(t)
	env.withUser(t, "student@example.com", "password123")
	router := newTestRouter(env)

	rec := postJSON(router, "/jwt", `{"email":"student@example.com","password":"password123"}`, "")
	var resp TokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if rec := postJSON(router, "/jwt/revoke", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("revoke without token = %d, want 401", rec.Code)
	}

	if rec := postJSON(router, "/jwt/revoke", "", resp.Token); rec.Code != http.StatusOK {
		t.Fatalf("revoke = %d: %s", rec.Code, rec.Body)
	}

	rec = postJSON(router, "/jwt/revoke", "", resp.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("reuse of revoked token = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "TOKEN_REVOKED") {
		t.Errorf("body = %s, want TOKEN_REVOKED", rec.Body)
	}
}
