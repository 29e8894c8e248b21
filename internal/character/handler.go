package character

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
)

type Handler struct {
	service  CharacterService
	validate *validator.Validate
}

func NewHandler(s CharacterService) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
	}
}

func (h *Handler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateCharacterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar personagem")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Claim de usuário malformada")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := h.service.Create(r.Context(), userID, userID, dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar personagem")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	characters, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar personagens")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, characters)
}

func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}

	c, err := h.service.Get(r.Context(), id, claims.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao buscar personagem")
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}

	var dto UpdateCharacterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para atualizar personagem")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.service.Update(r.Context(), id, claims.UserID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao atualizar personagem")
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, claims.UserID); err != nil {
		log.WithError(err).Error("Erro ao deletar personagem")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "character deleted successfully",
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "character not found", http.StatusNotFound)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		log.WithError(err).Error(logMsg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithError(err).Warn(logMsg)
}
