package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
)

const maskChar = "*"

// Handler serves the admin user endpoints.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ListUsersResponse struct {
	Users []SessionUser `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &ListUsersResponse{Users: users})
}

type CreateUserRequest struct {
	FirstName       string `json:"first_name,omitempty" validate:"required,min=2,max=64"`
	LastName        string `json:"last_name,omitempty" validate:"required,min=2,max=64"`
	Email           string `json:"email,omitempty" validate:"required,email,max=64"`
	Password        string `json:"password,omitempty" validate:"required,min=8,max=255,password"`
	PasswordConfirm string `json:"confirm_password,omitempty" validate:"required,eqfield=Password"`
	Role            Role   `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

func (r *CreateUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateParams{
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	created, err := h.svc.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			web.RespondConflict(w, err, message.UserExists, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondCreated(w, nil, &created)
}

type UpdateUserRequest struct {
	FirstName       string `json:"first_name,omitempty" validate:"required,min=2,max=64"`
	LastName        string `json:"last_name,omitempty" validate:"required,min=2,max=64"`
	Email           string `json:"email,omitempty" validate:"required,email,max=64"`
	Password        string `json:"password,omitempty" validate:"required,min=8,max=255,password"`
	PasswordConfirm string `json:"confirm_password,omitempty" validate:"required,eqfield=Password"`
}

func (r *UpdateUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	req, err := web.ParamsFromContext[UpdateUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := UpdateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	updated, err := h.svc.Update(r.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.UserNotFound, nil)
		case errors.Is(err, ErrDuplicateEmail):
			web.RespondConflict(w, err, message.EmailInUse, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondOK(w, nil, &updated)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	deleted, err := h.svc.Delete(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.UserNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &deleted)
}
