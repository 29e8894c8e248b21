package quizset

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
)

type Handler struct {
	service  QuizSetService
	validate *validator.Validate
}

func NewHandler(s QuizSetService) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
	}
}

func (h *Handler) CreateQuizSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para criar conjunto de quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateQuizSetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar conjunto")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Payload inválido para criar conjunto")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Claim de usuário malformada")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	profileID := userID
	if pid := r.Header.Get("X-Profile-ID"); pid != "" {
		if parsed, err := uuid.Parse(pid); err == nil {
			profileID = parsed
		}
	}

	created, err := h.service.CreateQuizSet(r.Context(), userID, profileID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao criar conjunto de quiz")
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) GetQuizSetWithQuestions(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizSetID := chi.URLParam(r, "id")
	if quizSetID == "" {
		http.Error(w, "quiz set id required", http.StatusBadRequest)
		return
	}

	dto, err := h.service.GetQuizSetWithQuestions(r.Context(), quizSetID, claims.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao buscar conjunto de quiz")
		return
	}

	config.JSON(w, http.StatusOK, dto)
}

func (h *Handler) ListQuizSets(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sets, err := h.service.ListQuizSetsByUser(r.Context(), claims.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao listar conjuntos do usuário")
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) ListPublicQuizSets(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sets, err := h.service.ListPublicQuizSets(r.Context(), limit)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao listar conjuntos públicos")
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) UpdateQuizSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizSetID := chi.URLParam(r, "id")
	if quizSetID == "" {
		http.Error(w, "quiz set id required", http.StatusBadRequest)
		return
	}

	var dto UpdateQuizSetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para atualizar conjunto")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	set, err := h.service.UpdateQuizSet(r.Context(), quizSetID, claims.UserID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao atualizar conjunto de quiz")
		return
	}

	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) DeleteQuizSet(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizSetID := chi.URLParam(r, "id")
	if quizSetID == "" {
		http.Error(w, "quiz set id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuizSet(r.Context(), quizSetID, claims.UserID); err != nil {
		h.writeServiceError(w, r, err, "Erro ao deletar conjunto de quiz")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz set deleted successfully",
	})
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizSetID := chi.URLParam(r, "id")
	if quizSetID == "" {
		http.Error(w, "quiz set id required", http.StatusBadRequest)
		return
	}

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para adicionar pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), quizSetID, claims.UserID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao adicionar pergunta ao conjunto")
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	questionID := chi.URLParam(r, "questionID")
	if questionID == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	var dto UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para atualizar pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), questionID, claims.UserID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Erro ao atualizar pergunta")
		return
	}

	config.JSON(w, http.StatusOK, question)
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	questionID := chi.URLParam(r, "questionID")
	if questionID == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveQuestion(r.Context(), questionID, claims.UserID); err != nil {
		h.writeServiceError(w, r, err, "Erro ao remover pergunta do conjunto")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrCorrectAnswerNotOpt):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(logMsg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithError(err).Warn(logMsg)
}
