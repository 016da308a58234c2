// AngelaMos | 2026
// handler_test.go

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/middleware"
)

const testEmailHeader = "X-Test-Email"

func fakeAuthenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(testEmailHeader)
		if email == "" {
			core.Unauthorized(w, "")
			return
		}
		ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTestRouter(repo Repository) chi.Router {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r, fakeAuthenticator)
	return r
}

func do(r http.Handler, method, path, body, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set(testEmailHeader, email)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_List(t *testing.T) {
	repo := &mockRepository{
		listByEmailFunc: func(_ context.Context, email string) ([]Entry, error) {
			return []Entry{{ID: testEntryID, Email: email, PriceCents: 2500}}, nil
		},
	}
	router := newTestRouter(repo)

	tests := []struct {
		name       string
		path       string
		caller     string
		wantStatus int
		wantLen    int
	}{
		{name: "no token", path: "/carts?email=a@example.com", wantStatus: http.StatusUnauthorized},
		{name: "no email", path: "/carts", caller: "a@example.com", wantStatus: http.StatusOK, wantLen: 0},
		{name: "own cart", path: "/carts?email=a@example.com", caller: "a@example.com", wantStatus: http.StatusOK, wantLen: 1},
		{name: "other cart", path: "/carts?email=b@example.com", caller: "a@example.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodGet, tt.path, "", tt.caller)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var entries []EntryResponse
			if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(entries) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(entries), tt.wantLen)
			}
			if tt.wantLen > 0 && entries[0].Price != 25 {
				t.Errorf("price = %v, want 25", entries[0].Price)
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	router := newTestRouter(&mockRepository{})

	rec := do(router, http.MethodPost, "/carts",
		`{"email":"a@example.com","classId":"`+testEntryID+`","name":"Tennis","price":10}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	rec = do(router, http.MethodPost, "/carts", `{"email":"a@example.com","classId":"x"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad class id = %d, want 400", rec.Code)
	}
}

func TestHandler_Delete(t *testing.T) {
	repo := &mockRepository{
		deleteFunc: func(_ context.Context, id string) error {
			if id == testEntryID {
				return nil
			}
			return fmt.Errorf("delete cart entry: %w", core.ErrNotFound)
		},
	}
	router := newTestRouter(repo)

	rec := do(router, http.MethodDelete, "/carts/"+testEntryID, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d", rec.Code)
	}
	var resp DeleteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || !resp.Deleted {
		t.Errorf("resp = %+v, err = %v", resp, err)
	}

	missing := "3a9d4c4e-8a6f-4f63-9a1e-9f4c3b2e1d00"
	if rec := do(router, http.MethodDelete, "/carts/"+missing, "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("delete missing = %d, want 404", rec.Code)
	}
}
