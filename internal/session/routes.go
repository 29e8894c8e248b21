package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.StartSession)
	r.Get("/current", h.CurrentSession)
	r.Post("/answers", h.RecordAnswer)
	r.Post("/next", h.NextQuestion)
	r.Post("/previous", h.PreviousQuestion)
	r.Post("/complete", h.CompleteSession)
	r.Post("/submit", h.SubmitAttempt)
	r.Delete("/", h.ResetSession)
	return r
}
