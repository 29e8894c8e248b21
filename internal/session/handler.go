package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
)

type Handler struct {
	manager  *Manager
	validate *validator.Validate
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager:  manager,
		validate: validator.New(),
	}
}

type StartSessionRequest struct {
	QuizSetID   string `json:"quiz_set_id" validate:"required,uuid"`
	CharacterID string `json:"character_id" validate:"omitempty,uuid"`
}

type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Answer     string `json:"answer" validate:"required"`
}

type questionView struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Difficulty int      `json:"difficulty"`
}

// sessionView é a projeção da sessão devolvida à UI. A resposta correta
// nunca sai daqui enquanto a sessão está em andamento.
type sessionView struct {
	QuizSetID       string            `json:"quiz_set_id"`
	CurrentIndex    int               `json:"current_index"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentQuestion questionView      `json:"current_question"`
	Answers         map[string]string `json:"answers"`
	StartedAt       time.Time         `json:"started_at"`
	IsComplete      bool              `json:"is_complete"`
}

func toSessionView(sess *Session, quizSetID string) sessionView {
	q := sess.CurrentQuestion()
	return sessionView{
		QuizSetID:      quizSetID,
		CurrentIndex:   sess.CurrentIndex(),
		TotalQuestions: sess.TotalQuestions(),
		CurrentQuestion: questionView{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		},
		Answers:    sess.Answers(),
		StartedAt:  sess.StartedAt(),
		IsComplete: sess.IsComplete(),
	}
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para iniciar sessão")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para iniciar sessão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Payload inválido para iniciar sessão")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := h.manager.StartSession(r.Context(), claims.UserID, req.QuizSetID, req.CharacterID)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao iniciar sessão de quiz")
		return
	}

	log.Info("Sessão de quiz iniciada", "quiz_set_id", req.QuizSetID)
	config.JSON(w, http.StatusCreated, toSessionView(sess, req.QuizSetID))
}

func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sess, quizSetID, err := h.manager.CurrentSession(claims.UserID)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao buscar sessão ativa")
		return
	}

	config.JSON(w, http.StatusOK, toSessionView(sess, quizSetID))
}

func (h *Handler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para registrar resposta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Payload inválido para registrar resposta")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := h.manager.RecordAnswer(claims.UserID, req.QuestionID, req.Answer)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao registrar resposta")
		return
	}

	_, quizSetID, _ := h.manager.CurrentSession(claims.UserID)
	config.JSON(w, http.StatusOK, toSessionView(sess, quizSetID))
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sess, err := h.manager.Advance(claims.UserID)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao avançar sessão")
		return
	}

	_, quizSetID, _ := h.manager.CurrentSession(claims.UserID)
	config.JSON(w, http.StatusOK, toSessionView(sess, quizSetID))
}

func (h *Handler) PreviousQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sess, err := h.manager.Retreat(claims.UserID)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao retroceder sessão")
		return
	}

	_, quizSetID, _ := h.manager.CurrentSession(claims.UserID)
	config.JSON(w, http.StatusOK, toSessionView(sess, quizSetID))
}

func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.manager.Complete(claims.UserID)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao finalizar sessão")
		return
	}

	log.Info("Sessão de quiz finalizada", "score", result.Score)
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attemptID, result, err := h.manager.Submit(r.Context(), claims.UserID)
	if err != nil {
		h.writeEngineError(w, r, err, "Erro ao submeter tentativa")
		return
	}

	log.Info("Tentativa submetida com sucesso", "attempt_id", attemptID)
	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"attempt_id": attemptID,
		"result":     result,
	})
}

func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h.manager.Reset(claims.UserID)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "session discarded",
	})
}

func (h *Handler) writeEngineError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := config.WithContext(r.Context())

	var subErr *SubmissionError

	switch {
	case errors.Is(err, ErrNoActiveSession):
		http.Error(w, "no active session", http.StatusNotFound)
	case errors.Is(err, ErrQuizSetNotFound):
		http.Error(w, "quiz set not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrEmptyQuiz):
		http.Error(w, "quiz set has no questions", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrUnknownQuestion), errors.Is(err, ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrSessionComplete), errors.Is(err, ErrSessionNotComplete):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrSubmitInFlight):
		http.Error(w, "submission already in flight", http.StatusConflict)
	case errors.As(err, &subErr):
		log.WithError(err).Error(logMsg)
		http.Error(w, "attempt submission failed, retry later", http.StatusBadGateway)
		return
	default:
		log.WithError(err).Error(logMsg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithError(err).Warn(logMsg)
}
