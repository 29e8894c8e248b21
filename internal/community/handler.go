package community

import (
	"net/http"
	"strconv"

	"github.com/saulo-duarte/questlog-lambda/internal/config"
)

type Handler struct {
	service CommunityService
}

func NewHandler(s CommunityService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao montar estatísticas da comunidade")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) ListRecentCompletions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	completions, err := h.service.RecentCompletions(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar conclusões recentes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, completions)
}

func (h *Handler) ListPublicQuizSets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sets, err := h.service.PublicQuizSets(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar conjuntos públicos da comunidade")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) ListPublicCharacters(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	characters, err := h.service.PublicCharacters(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar personagens públicos")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, characters)
}
