package session

import (
	"fmt"
	"math"
	"time"
)

// Session é o estado de uma tentativa de quiz em andamento. Toda
// mutação é tudo-ou-nada: aplica por inteiro ou deixa a sessão como
// estava.
type Session struct {
	questions    []Question
	byID         map[string]int
	currentIndex int
	answers      map[string]string
	startedAt    time.Time
	complete     bool
}

// AttemptResult é o resumo pontuado de uma sessão. A mesma instância
// serve para o resumo exibido e para a persistência.
type AttemptResult struct {
	Score          int             `json:"score"`
	CorrectCount   int             `json:"correct_count"`
	TotalQuestions int             `json:"total_questions"`
	PerQuestion    map[string]bool `json:"per_question"`
}

// Start cria uma sessão a partir de um conjunto ordenado e não vazio
// de perguntas.
func Start(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	byID := make(map[string]int, len(qs))
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid question: %w", err)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %s", q.ID)
		}
		byID[q.ID] = i
	}

	return &Session{
		questions:    qs,
		byID:         byID,
		currentIndex: 0,
		answers:      make(map[string]string),
		startedAt:    time.Now(),
		complete:     false,
	}, nil
}

// RecordAnswer registra a alternativa escolhida. A pergunta precisa
// pertencer ao conjunto e a resposta ser uma das alternativas;
// responder de novo sobrescreve a anterior.
func (s *Session) RecordAnswer(questionID, selected string) error {
	if s.complete {
		return ErrSessionComplete
	}

	idx, ok := s.byID[questionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if !s.questions[idx].HasOption(selected) {
		return fmt.Errorf("%w: %q", ErrInvalidAnswer, selected)
	}

	s.answers[questionID] = selected
	return nil
}

// Advance move o índice para a próxima pergunta; na última é no-op.
// Não exige resposta registrada para a pergunta atual.
func (s *Session) Advance() {
	if s.complete {
		return
	}
	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
	}
}

// Retreat move o índice para a pergunta anterior, travado em zero.
func (s *Session) Retreat() {
	if s.complete {
		return
	}
	if s.currentIndex > 0 {
		s.currentIndex--
	}
}

// Complete finaliza a sessão. Perguntas sem resposta contam como
// erradas; uma sessão completa não volta a ser editável.
func (s *Session) Complete() {
	s.complete = true
}

// Score calcula o resultado: comparação exata de strings,
// arredondamento de 100*acertos/total. Pura e idempotente.
func (s *Session) Score() AttemptResult {
	perQuestion := make(map[string]bool, len(s.questions))

	correct := 0
	for _, q := range s.questions {
		ok := s.answers[q.ID] == q.CorrectAnswer
		perQuestion[q.ID] = ok
		if ok {
			correct++
		}
	}

	total := len(s.questions)
	score := int(math.Round(float64(correct) / float64(total) * 100))

	return AttemptResult{
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
		PerQuestion:    perQuestion,
	}
}

func (s *Session) CurrentIndex() int { return s.currentIndex }

func (s *Session) TotalQuestions() int { return len(s.questions) }

func (s *Session) StartedAt() time.Time { return s.startedAt }

func (s *Session) IsComplete() bool { return s.complete }

func (s *Session) CurrentQuestion() Question {
	return s.questions[s.currentIndex]
}

func (s *Session) Questions() []Question {
	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)
	return qs
}

func (s *Session) Answers() map[string]string {
	answers := make(map[string]string, len(s.answers))
	for id, a := range s.answers {
		answers[id] = a
	}
	return answers
}

func (s *Session) Answer(questionID string) (string, bool) {
	a, ok := s.answers[questionID]
	return a, ok
}
