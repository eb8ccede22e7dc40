package post

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/inkwell/internal/auth"
	"github.com/ferdiebergado/inkwell/internal/pkg/message"
	"github.com/ferdiebergado/inkwell/internal/pkg/web"
)

// Handler serves the post endpoints. Every route runs behind the session
// guard, so the principal is always in the request context.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
		return
	}

	posts, err := h.svc.List(r.Context(), actor)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &ListPostsResponse{Posts: posts})
}

type CreatePostRequest struct {
	Title      string `json:"title,omitempty" validate:"required,max=255"`
	Content    string `json:"content,omitempty" validate:"required"`
	CoverImage string `json:"cover_image,omitempty" validate:"omitempty,url,max=2048"`
	IsDraft    bool   `json:"is_draft,omitempty"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
		return
	}

	req, err := web.ParamsFromContext[CreatePostRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.Create(r.Context(), actor, CreateParams{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		IsDraft:    req.IsDraft,
	})
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondCreated(w, nil, &created)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
		return
	}

	p, err := h.svc.Get(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.PostNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &p)
}

type UpdatePostRequest struct {
	Title      string `json:"title,omitempty" validate:"required,max=255"`
	Content    string `json:"content,omitempty" validate:"required"`
	CoverImage string `json:"cover_image,omitempty" validate:"omitempty,url,max=2048"`
	IsDraft    bool   `json:"is_draft,omitempty"`
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdatePostRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.Update(r.Context(), actor, r.PathValue("id"), UpdateParams{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		IsDraft:    req.IsDraft,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.PostNotFound, nil)
		case errors.Is(err, ErrForbidden):
			web.RespondForbidden(w, err, message.Forbidden, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondOK(w, nil, &updated)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotLoggedIn, nil)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.PostNotFound, nil)
		case errors.Is(err, ErrForbidden):
			web.RespondForbidden(w, err, message.Forbidden, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondOK(w, nil, &deleted)
}
