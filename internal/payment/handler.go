// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/middleware"
)

type Handler struct {
	service     *Service
	enrollments *EnrollmentService
	validator   *validator.Validate
}

func NewHandler(service *Service, enrollments *EnrollmentService) *Handler {
	return &Handler{
		service:     service,
		enrollments: enrollments,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/create-payment-intent", h.CreateIntent)
		r.Get("/payment", h.List)
		r.Post("/payment", h.Complete)
	})
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	intent, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "price: gt=0")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CreateIntentResponse{ClientSecret: intent.ClientSecret})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPaymentResponseList(payments))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	enrollment, err := h.enrollments.Complete(
		r.Context(),
		middleware.GetEmail(r.Context()),
		req,
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToEnrollmentResponse(enrollment))
}
