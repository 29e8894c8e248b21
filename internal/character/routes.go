package character

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateCharacter)
	r.Get("/", h.ListCharacters)
	r.Get("/{id}", h.GetCharacter)
	r.Patch("/{id}", h.UpdateCharacter)
	r.Delete("/{id}", h.DeleteCharacter)
	return r
}
