// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

const alreadyExistingMessage = "user is already existing"

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

// RegisterRoutes mounts the user and instructor routes. The admin and
// instructor subpaths share one URL parameter name, {key}, because chi keys
// a path segment by its parameter: PATCH reads it as an id, GET as an email.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Create)
		r.With(authenticator, adminOnly).Get("/", h.List)

		r.Patch("/admin/{key}", h.PromoteAdmin)
		r.Patch("/instructor/{key}", h.PromoteInstructor)

		r.With(authenticator).Get("/admin/{key}", h.CheckAdmin)
		r.Get("/instructor/{key}", h.CheckInstructor)
	})

	r.Get("/instructors", h.ListInstructors)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	user, created, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if !created {
		core.OK(w, CreateUserResponse{
			Created: false,
			Message: alreadyExistingMessage,
		})
		return
	}

	resp := ToUserResponse(user)
	core.Created(w, CreateUserResponse{Created: true, User: &resp})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponseList(users))
}

func (h *Handler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListInstructors(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponseList(users))
}

func (h *Handler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, RoleAdmin)
}

func (h *Handler) PromoteInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, RoleInstructor)
}

func (h *Handler) promote(w http.ResponseWriter, r *http.Request, role Role) {
	id := chi.URLParam(r, "key")

	user, err := h.service.Promote(r.Context(), id, role)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	ok, err := h.service.HasRole(r.Context(), chi.URLParam(r, "key"), RoleAdmin)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AdminCheckResponse{Admin: ok})
}

func (h *Handler) CheckInstructor(w http.ResponseWriter, r *http.Request) {
	ok, err := h.service.HasRole(
		r.Context(),
		chi.URLParam(r, "key"),
		RoleInstructor,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, InstructorCheckResponse{Instructor: ok})
}
