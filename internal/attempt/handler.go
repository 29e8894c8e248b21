package attempt

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	attempts, err := h.service.ListByUser(r.Context(), claims.UserID, limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) ListAttemptsByQuizSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizSetID := chi.URLParam(r, "quizSetID")
	if quizSetID == "" {
		http.Error(w, "quiz set id required", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.ListByQuizSet(r.Context(), quizSetID, claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas do conjunto")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.service.StatsByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar estatísticas de tentativas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
