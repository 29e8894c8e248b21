package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/questlog-lambda/internal/attempt"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/character"
	"github.com/saulo-duarte/questlog-lambda/internal/community"
	"github.com/saulo-duarte/questlog-lambda/internal/middlewares"
	"github.com/saulo-duarte/questlog-lambda/internal/quizset"
	"github.com/saulo-duarte/questlog-lambda/internal/session"
	"github.com/saulo-duarte/questlog-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	QuizSetHandler   *quizset.Handler
	SessionHandler   *session.Handler
	AttemptHandler   *attempt.Handler
	CharacterHandler *character.Handler
	CommunityHandler *community.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", cfg.UserHandler.Logout)
	})

	r.Mount("/community", community.Routes(cfg.CommunityHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/quiz-sets", quizset.Routes(cfg.QuizSetHandler))
		r.Mount("/sessions", session.Routes(cfg.SessionHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
		r.Mount("/characters", character.Routes(cfg.CharacterHandler))
	})
	return r
}
