package community

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Rotas públicas: a página da comunidade não exige autenticação.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/stats", h.GetStats)
	r.Get("/recent", h.ListRecentCompletions)
	r.Get("/quiz-sets", h.ListPublicQuizSets)
	r.Get("/characters", h.ListPublicCharacters)
	return r
}
