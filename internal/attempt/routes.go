package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.ListAttempts)
	r.Get("/stats", h.GetStats)
	r.Get("/quiz-set/{quizSetID}", h.ListAttemptsByQuizSet)
	return r
}
