// AngelaMos | 2026
// handler.go

package class

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/classes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.DecrementSeat)
		r.Patch("/status/{id}", h.Approve)
		r.Patch("/deny/{id}", h.Deny)
		r.Patch("/feedback/{id}", h.SetFeedback)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToClassResponseList(classes))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	class, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToClassResponse(class))
}

func (h *Handler) DecrementSeat(w http.ResponseWriter, r *http.Request) {
	class, err := h.service.DecrementSeat(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeClassError(w, err)
		return
	}

	core.OK(w, ToClassResponse(class))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	class, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeClassError(w, err)
		return
	}

	core.OK(w, ToClassResponse(class))
}

func (h *Handler) Deny(w http.ResponseWriter, r *http.Request) {
	class, err := h.service.Deny(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeClassError(w, err)
		return
	}

	core.OK(w, ToClassResponse(class))
}

func (h *Handler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	class, err := h.service.SetFeedback(
		r.Context(),
		chi.URLParam(r, "id"),
		req.Feedback,
	)
	if err != nil {
		writeClassError(w, err)
		return
	}

	core.OK(w, ToClassResponse(class))
}

func writeClassError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "class")
	case errors.Is(err, core.ErrCapacityExhausted):
		core.JSONError(w, core.CapacityExhaustedError())
	default:
		core.InternalServerError(w, err)
	}
}
