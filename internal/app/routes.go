package app

import (
	"github.com/ferdiebergado/inkwell/internal/auth"
	"github.com/ferdiebergado/inkwell/internal/middleware"
	"github.com/ferdiebergado/inkwell/internal/platform/router"
	"github.com/ferdiebergado/inkwell/internal/platform/validation"
	"github.com/ferdiebergado/inkwell/internal/post"
	"github.com/ferdiebergado/inkwell/internal/session"
	"github.com/ferdiebergado/inkwell/internal/user"
)

func mountAccountRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, sessions *session.Manager, maxBodySize int64) {
	r.Group("/account", func(gr router.Router) {
		gr.Post("/register", handler.RegisterUser,
			middleware.DecodePayload[auth.RegisterUserRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterUserRequest](validator))
		gr.Post("/login", handler.LoginUser,
			middleware.DecodePayload[auth.LoginUserRequest](maxBodySize),
			middleware.ValidateInput[auth.LoginUserRequest](validator))
		gr.Post("/logout", handler.LogoutUser)
		gr.Post("/verify", handler.VerifyUser,
			middleware.DecodePayload[auth.VerifyUserRequest](maxBodySize),
			middleware.ValidateInput[auth.VerifyUserRequest](validator))
		gr.Get("/me", handler.CurrentUser, auth.RequireSession(sessions))
		gr.Post("/password-reset", handler.ForgotPassword,
			middleware.DecodePayload[auth.ForgotPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ForgotPasswordRequest](validator))
		gr.Post("/password-reset/verify", handler.VerifyPasswordReset,
			middleware.DecodePayload[auth.VerifyResetRequest](maxBodySize),
			middleware.ValidateInput[auth.VerifyResetRequest](validator))
		gr.Put("/password", handler.ChangePassword,
			middleware.DecodePayload[auth.ChangePasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ChangePasswordRequest](validator))
	})
}

func mountPostRoutes(r router.Router, handler *post.Handler, validator validation.Validator, sessions *session.Manager, maxBodySize int64) {
	r.Group("/posts", func(gr router.Router) {
		gr.Get("/", handler.ListPosts)
		gr.Post("/", handler.CreatePost,
			middleware.DecodePayload[post.CreatePostRequest](maxBodySize),
			middleware.ValidateInput[post.CreatePostRequest](validator))
		gr.Get("/{id}", handler.GetPost)
		gr.Put("/{id}", handler.UpdatePost,
			middleware.DecodePayload[post.UpdatePostRequest](maxBodySize),
			middleware.ValidateInput[post.UpdatePostRequest](validator))
		gr.Delete("/{id}", handler.DeletePost)
	}, auth.RequireSession(sessions))
}

func mountAdminRoutes(r router.Router, handler *user.Handler, validator validation.Validator, sessions *session.Manager, maxBodySize int64) {
	r.Group("/admin", func(gr router.Router) {
		gr.Get("/users", handler.ListUsers)
		gr.Post("/users", handler.CreateUser,
			middleware.DecodePayload[user.CreateUserRequest](maxBodySize),
			middleware.ValidateInput[user.CreateUserRequest](validator))
		gr.Put("/users/{id}", handler.UpdateUser,
			middleware.DecodePayload[user.UpdateUserRequest](maxBodySize),
			middleware.ValidateInput[user.UpdateUserRequest](validator))
		gr.Delete("/users/{id}", handler.DeleteUser)
	}, auth.RequireSession(sessions), auth.RequireAdmin)
}
