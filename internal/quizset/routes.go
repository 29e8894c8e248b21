package quizset

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateQuizSet)
	r.Get("/", h.ListQuizSets)
	r.Get("/public", h.ListPublicQuizSets)
	r.Get("/{id}", h.GetQuizSetWithQuestions)
	r.Patch("/{id}", h.UpdateQuizSet)
	r.Delete("/{id}", h.DeleteQuizSet)
	r.Post("/{id}/questions", h.AddQuestion)
	r.Patch("/questions/{questionID}", h.UpdateQuestion)
	r.Delete("/questions/{questionID}", h.RemoveQuestion)
	return r
}
