package quizset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
	"gorm.io/datatypes"
)

var (
	ErrNotFound            = errors.New("quiz set not found")
	ErrUnauthorized        = errors.New("quiz set does not belong to user")
	ErrCorrectAnswerNotOpt = errors.New("correct answer is not one of the answers")
)

type QuizSetService interface {
	CreateQuizSet(ctx context.Context, userID, profileID uuid.UUID, dto CreateQuizSetDTO) (*QuizSetWithQuestionsDTO, error)
	GetQuizSetWithQuestions(ctx context.Context, quizSetID, userID string) (*QuizSetWithQuestionsDTO, error)
	ListQuizSetsByUser(ctx context.Context, userID string) ([]*QuizSet, error)
	ListPublicQuizSets(ctx context.Context, limit int) ([]*QuizSet, error)
	UpdateQuizSet(ctx context.Context, quizSetID, userID string, dto UpdateQuizSetDTO) (*QuizSet, error)
	DeleteQuizSet(ctx context.Context, quizSetID, userID string) error

	AddQuestion(ctx context.Context, quizSetID, userID string, dto CreateQuestionDTO) (*Question, error)
	UpdateQuestion(ctx context.Context, questionID, userID string, dto UpdateQuestionDTO) (*Question, error)
	RemoveQuestion(ctx context.Context, questionID, userID string) error
}

type quizSetService struct {
	repo QuizSetRepository
}

func NewService(repo QuizSetRepository) QuizSetService {
	return &quizSetService{repo: repo}
}

func encodeAnswers(answers []string) (datatypes.JSON, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeAnswers converte a coluna jsonb de alternativas em []string.
func DecodeAnswers(raw datatypes.JSON) ([]string, error) {
	var answers []string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("invalid answers payload: %w", err)
	}
	return answers, nil
}

func questionFromDTO(dto CreateQuestionDTO) (*Question, error) {
	found := false
	for _, a := range dto.Answers {
		if a == dto.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrCorrectAnswerNotOpt, dto.CorrectAnswer)
	}

	raw, err := encodeAnswers(dto.Answers)
	if err != nil {
		return nil, err
	}

	return &Question{
		ID:            uuid.New(),
		QuestionText:  dto.QuestionText,
		Answers:       raw,
		CorrectAnswer: dto.CorrectAnswer,
		Difficulty:    dto.Difficulty,
	}, nil
}

func (s *quizSetService) CreateQuizSet(ctx context.Context, userID, profileID uuid.UUID, dto CreateQuizSetDTO) (*QuizSetWithQuestionsDTO, error) {
	log := config.WithContext(ctx)
	log.Info("Criando novo conjunto de quiz...")

	sharing := dto.Sharing
	if sharing == "" {
		sharing = SharingPrivate
	}

	set := &QuizSet{
		ID:          uuid.New(),
		UserID:      userID,
		ProfileID:   profileID,
		Title:       dto.Title,
		Description: dto.Description,
		Sharing:     sharing,
		Tags:        dto.Tags,
	}

	if dto.SourceSetID != nil {
		sourceID, err := uuid.Parse(*dto.SourceSetID)
		if err != nil {
			return nil, fmt.Errorf("invalid source_set_id: %w", err)
		}
		set.SourceSetID = &sourceID
	}

	questions := make([]*Question, 0, len(dto.Questions))
	for _, qdto := range dto.Questions {
		q, err := questionFromDTO(qdto)
		if err != nil {
			log.WithError(err).Warn("Pergunta inválida rejeitada na criação do conjunto")
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := s.repo.Create(set, questions); err != nil {
		log.WithError(err).Error("Erro ao criar conjunto de quiz")
		return nil, err
	}

	log.Info("Conjunto de quiz criado com sucesso", "quiz_set_id", set.ID.String())
	return &QuizSetWithQuestionsDTO{QuizSet: set, Questions: questions}, nil
}

func (s *quizSetService) GetQuizSetWithQuestions(ctx context.Context, quizSetID, userID string) (*QuizSetWithQuestionsDTO, error) {
	log := config.WithContext(ctx)
	log.Info("Buscando conjunto de quiz com perguntas...", "quiz_set_id", quizSetID)

	set, err := s.repo.GetByID(quizSetID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar conjunto de quiz")
		return nil, err
	}
	if set == nil {
		return nil, ErrNotFound
	}

	// Conjuntos privados só são visíveis para o dono. UNLISTED é
	// acessível por link direto, como no compartilhamento por URL.
	if set.Sharing == SharingPrivate && set.UserID.String() != userID {
		return nil, ErrUnauthorized
	}

	questions, err := s.repo.ListQuestionsBySet(quizSetID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar perguntas do conjunto")
		return nil, err
	}

	return &QuizSetWithQuestionsDTO{QuizSet: set, Questions: questions}, nil
}

func (s *quizSetService) ListQuizSetsByUser(ctx context.Context, userID string) ([]*QuizSet, error) {
	log := config.WithContext(ctx)

	sets, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar conjuntos do usuário")
		return nil, err
	}
	return sets, nil
}

func (s *quizSetService) ListPublicQuizSets(ctx context.Context, limit int) ([]*QuizSet, error) {
	log := config.WithContext(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	sets, err := s.repo.ListPublic(limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar conjuntos públicos")
		return nil, err
	}
	return sets, nil
}

func (s *quizSetService) UpdateQuizSet(ctx context.Context, quizSetID, userID string, dto UpdateQuizSetDTO) (*QuizSet, error) {
	log := config.WithContext(ctx)
	log.Info("Atualizando conjunto de quiz...", "quiz_set_id", quizSetID)

	set, err := s.repo.GetByID(quizSetID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar conjunto de quiz")
		return nil, err
	}
	if set == nil {
		return nil, ErrNotFound
	}
	if set.UserID.String() != userID {
		return nil, ErrUnauthorized
	}

	if dto.Title != nil {
		set.Title = *dto.Title
	}
	if dto.Description != nil {
		set.Description = *dto.Description
	}
	if dto.Sharing != nil {
		set.Sharing = *dto.Sharing
	}
	if dto.Tags != nil {
		set.Tags = dto.Tags
	}

	if err := s.repo.Update(set); err != nil {
		log.WithError(err).Error("Erro ao atualizar conjunto de quiz")
		return nil, err
	}
	return set, nil
}

func (s *quizSetService) DeleteQuizSet(ctx context.Context, quizSetID, userID string) error {
	log := config.WithContext(ctx)
	log.Info("Deletando conjunto de quiz...", "quiz_set_id", quizSetID)

	if err := s.repo.Delete(quizSetID, userID); err != nil {
		log.WithError(err).Error("Erro ao deletar conjunto de quiz")
		return err
	}

	log.Info("Conjunto de quiz deletado com sucesso")
	return nil
}

func (s *quizSetService) AddQuestion(ctx context.Context, quizSetID, userID string, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)
	log.Info("Adicionando pergunta ao conjunto...", "quiz_set_id", quizSetID)

	set, err := s.repo.GetByID(quizSetID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar conjunto de quiz")
		return nil, err
	}
	if set == nil {
		return nil, ErrNotFound
	}
	if set.UserID.String() != userID {
		return nil, ErrUnauthorized
	}

	question, err := questionFromDTO(dto)
	if err != nil {
		log.WithError(err).Warn("Pergunta inválida rejeitada")
		return nil, err
	}
	question.QuizSetID = set.ID
	question.UserID = set.UserID

	if err := s.repo.AddQuestions([]*Question{question}); err != nil {
		log.WithError(err).Error("Erro ao adicionar pergunta")
		return nil, err
	}

	log.Info("Pergunta adicionada com sucesso", "question_id", question.ID.String())
	return question, nil
}

func (s *quizSetService) UpdateQuestion(ctx context.Context, questionID, userID string, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)
	log.Info("Atualizando pergunta...", "question_id", questionID)

	question, err := s.repo.GetQuestionByID(questionID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar pergunta")
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	if question.UserID.String() != userID {
		return nil, ErrUnauthorized
	}

	if dto.QuestionText != nil {
		question.QuestionText = *dto.QuestionText
	}
	if dto.Answers != nil {
		raw, err := encodeAnswers(dto.Answers)
		if err != nil {
			return nil, err
		}
		question.Answers = raw
	}
	if dto.CorrectAnswer != nil {
		question.CorrectAnswer = *dto.CorrectAnswer
	}
	if dto.Difficulty != nil {
		question.Difficulty = *dto.Difficulty
	}

	// Revalida a pertinência da resposta correta após qualquer mudança.
	answers, err := DecodeAnswers(question.Answers)
	if err != nil {
		return nil, err
	}
	found := false
	for _, a := range answers {
		if a == question.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrCorrectAnswerNotOpt, question.CorrectAnswer)
	}

	if err := s.repo.UpdateQuestion(question); err != nil {
		log.WithError(err).Error("Erro ao atualizar pergunta")
		return nil, err
	}
	return question, nil
}

func (s *quizSetService) RemoveQuestion(ctx context.Context, questionID, userID string) error {
	log := config.WithContext(ctx)
	log.Info("Removendo pergunta...", "question_id", questionID)

	if err := s.repo.DeleteQuestion(questionID, userID); err != nil {
		log.WithError(err).Error("Erro ao remover pergunta")
		return err
	}

	log.Info("Pergunta removida com sucesso", "question_id", questionID)
	return nil
}
