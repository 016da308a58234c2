// AngelaMos | 2026
// handler_test.go

package class

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
)

type mockRepository struct {
	classes map[string]*Class
	created []*Class
	gotList string
}

func newMockRepository(classes ...Class) *mockRepository {
	m := &mockRepository{classes: map[string]*Class{}}
	for i := range classes {
		c := classes[i]
		m.classes[c.ID] = &c
	}
	return m
}

func (m *mockRepository) Create(_ context.Context, c *Class) error {
	m.created = append(m.created, c)
	m.classes[c.ID] = c
	return nil
}

func (m *mockRepository) List(_ context.Context, email string) ([]Class, error) {
	m.gotList = email
	out := []Class{}
	for _, c := range m.classes {
		if email == "" || c.Email == email {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockRepository) DecrementSeat(_ context.Context, id string) (*Class, error) {
	c, ok := m.classes[id]
	if !ok {
		return nil, fmt.Errorf("decrement seat: %w", core.ErrNotFound)
	}
	if c.AvailableSeats <= 0 {
		return nil, fmt.Errorf("decrement seat: %w", core.ErrCapacityExhausted)
	}
	c.AvailableSeats--
	return c, nil
}

func (m *mockRepository) Enroll(context.Context, string) (*SeatCount, error) {
	return nil, nil
}

func (m *mockRepository) SetStatus(_ context.Context, id string, status Status) (*Class, error) {
	c, ok := m.classes[id]
	if !ok {
		return nil, fmt.Errorf("set status: %w", core.ErrNotFound)
	}
	c.Status = status
	return c, nil
}

func (m *mockRepository) SetFeedback(_ context.Context, id, feedback string) (*Class, error) {
	c, ok := m.classes[id]
	if !ok {
		return nil, fmt.Errorf("set feedback: %w", core.ErrNotFound)
	}
	c.Feedback = &feedback
	return c, nil
}

func (m *mockRepository) CountByStatus(context.Context) (map[Status]int, error) {
	return map[Status]int{}, nil
}

func newTestRouter(repo Repository) chi.Router {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	repo := newMockRepository()
	router := newTestRouter(repo)

	rec := do(router, http.MethodPost, "/classes",
		`{"name":"Tennis","email":"Coach@Example.com","price":12.5,"availableSeats":10}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d classes", len(repo.created))
	}
	c := repo.created[0]
	if c.PriceCents != 1250 || c.Status != StatusPending || c.Email != "coach@example.com" {
		t.Errorf("stored class = %+v", c)
	}

	var resp ClassResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Price != 12.5 || resp.AvailableSeats != 10 || resp.Status != StatusPending {
		t.Errorf("response = %+v", resp)
	}
}

func TestHandler_CreateRejectsNegativeSeats(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rec := do(router, http.MethodPost, "/classes",
		`{"name":"Tennis","email":"coach@example.com","availableSeats":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_List(t *testing.T) {
	repo := newMockRepository(
		Class{ID: testClassID, Email: "coach@example.com"},
		Class{ID: "7f1c2b7e-4d1a-4b0f-9a51-2f0e3b1c9d10", Email: "other@example.com"},
	)
	router := newTestRouter(repo)

	rec := do(router, http.MethodGet, "/classes?email=coach@example.com", "")
	var classes []ClassResponse
	if err := json.NewDecoder(rec.Body).Decode(&classes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(classes) != 1 || repo.gotList != "coach@example.com" {
		t.Errorf("filtered list = %+v", classes)
	}

	rec = do(router, http.MethodGet, "/classes", "")
	classes = nil
	if err := json.NewDecoder(rec.Body).Decode(&classes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(classes) != 2 {
		t.Errorf("full list has %d entries", len(classes))
	}
}

func TestHandler_DecrementSeat(t *testing.T) {
	repo := newMockRepository(Class{ID: testClassID, AvailableSeats: 1})
	router := newTestRouter(repo)
	path := "/classes/" + testClassID

	rec := do(router, http.MethodPatch, path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first decrement = %d", rec.Code)
	}

	rec = do(router, http.MethodPatch, path, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("decrement at zero = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "CAPACITY_EXHAUSTED") {
		t.Errorf("body = %s", rec.Body)
	}
	if repo.classes[testClassID].AvailableSeats != 0 {
		t.Errorf("seats went negative: %d", repo.classes[testClassID].AvailableSeats)
	}

	if rec := do(router, http.MethodPatch, "/classes/not-an-id", ""); rec.Code != http.StatusNotFound {
		t.Errorf("malformed id = %d, want 404", rec.Code)
	}
}

func TestHandler_ReviewTransitions(t *testing.T) {
	repo := newMockRepository(Class{ID: testClassID, Status: StatusPending})
	router := newTestRouter(repo)

	if rec := do(router, http.MethodPatch, "/classes/status/"+testClassID, ""); rec.Code != http.StatusOK {
		t.Fatalf("approve = %d", rec.Code)
	}
	if repo.classes[testClassID].Status != StatusApproved {
		t.Errorf("status = %q, want approved", repo.classes[testClassID].Status)
	}

	if rec := do(router, http.MethodPatch, "/classes/deny/"+testClassID, ""); rec.Code != http.StatusOK {
		t.Fatalf("deny = %d", rec.Code)
	}
	if repo.classes[testClassID].Status != StatusDenied {
		t.Errorf("status = %q, want denied", repo.classes[testClassID].Status)
	}

	rec := do(router, http.MethodPatch, "/classes/feedback/"+testClassID, `{"feedback":"add a schedule"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("feedback = %d", rec.Code)
	}
	if fb := repo.classes[testClassID].Feedback; fb == nil || *fb != "add a schedule" {
		t.Errorf("feedback = %v", fb)
	}

	missing := "8f1c2b7e-4d1a-4b0f-9a51-2f0e3b1c9d10"
	if rec := do(router, http.MethodPatch, "/classes/status/"+missing, ""); rec.Code != http.StatusNotFound {
		t.Errorf("approve missing = %d, want 404", rec.Code)
	}
}
