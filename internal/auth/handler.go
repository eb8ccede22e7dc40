package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
	"github.com/ferdiebergado/inkwell/internal/session"
	"github.com/ferdiebergado/inkwell/internal/user"
)

const maskChar = "*"

// Handler serves the account endpoints. It owns the translation between
// service errors and HTTP responses; session creation and teardown also live
// here, next to the login and logout routes.
type Handler struct {
	svc      AccountService
	sessions *session.Manager
}

func NewHandler(svc AccountService, sessions *session.Manager) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
	}
}

type RegisterUserRequest struct {
	FirstName       string `json:"first_name,omitempty" validate:"required,min=2,max=64"`
	LastName        string `json:"last_name,omitempty" validate:"required,min=2,max=64"`
	Email           string `json:"email,omitempty" validate:"required,email,max=64"`
	Password        string `json:"password,omitempty" validate:"required,min=8,max=255,password"`
	PasswordConfirm string `json:"confirm_password,omitempty" validate:"required,eqfield=Password"`
}

func (r *RegisterUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type RegisterUserResponse struct {
	User user.SessionUser `json:"user"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	registered, err := h.svc.RegisterUser(r.Context(), RegisterUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondConflict(w, err, message.UserExists, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.RegisterOK
	web.RespondCreated(w, &msg, &RegisterUserResponse{User: registered})
}

type LoginUserRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r *LoginUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginUserResponse struct {
	User user.SessionUser `json:"user"`
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	loggedIn, err := h.svc.LoginUser(r.Context(), LoginUserParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidCredentials):
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
		case errors.Is(err, ErrUserNotVerified):
			web.RespondUnauthorized(w, err, message.NotVerified, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	if err := h.sessions.New(w, r, loggedIn); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.LoggedIn
	web.RespondOK(w, &msg, &LoginUserResponse{User: loggedIn})
}

func (h *Handler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(w, r); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.LoggedOut
	web.RespondOK[struct{}](w, &msg, nil)
}

type VerifyUserRequest struct {
	Code string `json:"code,omitempty" validate:"required,hexadecimal"`
}

func (r *VerifyUserRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("code", maskChar))
}

// VerifyUser is unauthenticated; the code itself is the credential.
func (h *Handler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[VerifyUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.VerifyUser(r.Context(), req.Code); err != nil {
		if errors.Is(err, ErrCodeInvalid) {
			web.RespondBadRequest(w, err, message.InvalidCode, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.VerifyOK
	web.RespondOK[struct{}](w, &msg, nil)
}

type CurrentUserResponse struct {
	User user.SessionUser `json:"user"`
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
		return
	}

	web.RespondOK(w, nil, &CurrentUserResponse{User: principal})
}

type ForgotPasswordRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r *ForgotPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", maskChar))
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ForgotPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			web.RespondBadRequest(w, err, message.ResetFailed, nil)
		case errors.Is(err, ErrUserNotVerified):
			web.RespondBadRequest(w, err, message.NotVerified, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := message.ResetSent
	web.RespondOK[struct{}](w, &msg, nil)
}

type VerifyResetRequest struct {
	Code string `json:"code,omitempty" validate:"required,hexadecimal"`
}

func (r *VerifyResetRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("code", maskChar))
}

func (h *Handler) VerifyPasswordReset(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[VerifyResetRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.VerifyPasswordReset(r.Context(), req.Code); err != nil {
		if errors.Is(err, ErrCodeInvalid) {
			web.RespondBadRequest(w, err, message.InvalidCode, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.ResetCodeValid
	web.RespondOK[struct{}](w, &msg, nil)
}

type ChangePasswordRequest struct {
	Code            string `json:"code,omitempty" validate:"required,hexadecimal"`
	Password        string `json:"password,omitempty" validate:"required,min=8,max=255,password"`
	PasswordConfirm string `json:"confirm_password,omitempty" validate:"required,eqfield=Password"`
}

func (r *ChangePasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("code", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ChangePasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	err = h.svc.ChangePassword(r.Context(), ChangePasswordParams{
		Code:     req.Code,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeInvalid):
			web.RespondBadRequest(w, err, message.InvalidCode, nil)
		case errors.Is(err, ErrUserNotFound):
			web.RespondBadRequest(w, err, message.ResetFailed, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := message.PasswordSaved
	web.RespondOK[struct{}](w, &msg, nil)
}
