package session

import (
	"context"
	"sync"
	"time"
)

// QuestionSource carrega o conjunto ordenado de perguntas de um quiz.
// A ordem precisa ser estável entre chamadas: o índice da sessão
// referencia posições.
type QuestionSource interface {
	LoadQuestions(ctx context.Context, quizSetID, userID string) ([]Question, error)
}

type Attempt struct {
	QuizSetID   string
	UserID      string
	CharacterID string
	Answers     map[string]string
	Result      AttemptResult
	StartedAt   time.Time
	CompletedAt time.Time
}

// AttemptSink persiste uma tentativa finalizada. Em falha transitória
// a mesma tentativa pode ser reenviada.
type AttemptSink interface {
	SubmitAttempt(ctx context.Context, attempt Attempt) (string, error)
}

type activeSession struct {
	quizSetID   string
	characterID string
	sess        *Session
	result      *AttemptResult
	submitting  bool
}

// Manager é o dono das sessões ativas, exatamente uma por usuário.
type Manager struct {
	source QuestionSource
	sink   AttemptSink

	mu     sync.Mutex
	active map[string]*activeSession
}

func NewManager(source QuestionSource, sink AttemptSink) *Manager {
	return &Manager{
		source: source,
		sink:   sink,
		active: make(map[string]*activeSession),
	}
}

// StartSession inicia uma sessão nova para o usuário. Qualquer sessão
// anterior é descartada sem ser persistida.
func (m *Manager) StartSession(ctx context.Context, userID, quizSetID, characterID string) (*Session, error) {
	questions, err := m.source.LoadQuestions(ctx, quizSetID, userID)
	if err != nil {
		return nil, err
	}

	sess, err := Start(questions)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.active[userID] = &activeSession{
		quizSetID:   quizSetID,
		characterID: characterID,
		sess:        sess,
	}
	return sess, nil
}

func (m *Manager) CurrentSession(userID string) (*Session, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.active[userID]
	if !ok {
		return nil, "", ErrNoActiveSession
	}
	return entry.sess, entry.quizSetID, nil
}

func (m *Manager) RecordAnswer(userID, questionID, selected string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.active[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	if err := entry.sess.RecordAnswer(questionID, selected); err != nil {
		return nil, err
	}
	return entry.sess, nil
}

func (m *Manager) Advance(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.active[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	entry.sess.Advance()
	return entry.sess, nil
}

func (m *Manager) Retreat(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.active[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	entry.sess.Retreat()
	return entry.sess, nil
}

// Complete finaliza a sessão ativa e calcula o resultado uma única
// vez. O mesmo resultado alimenta o resumo e a submissão.
func (m *Manager) Complete(userID string) (AttemptResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.active[userID]
	if !ok {
		return AttemptResult{}, ErrNoActiveSession
	}

	entry.sess.Complete()
	if entry.result == nil {
		result := entry.sess.Score()
		entry.result = &result
	}
	return *entry.result, nil
}

// Submit envia a tentativa completa ao sink, no máximo uma vez:
// submissões em voo são rejeitadas e após sucesso a sessão é
// descartada. Em falha ela permanece completa e resubmetível.
func (m *Manager) Submit(ctx context.Context, userID string) (string, AttemptResult, error) {
	m.mu.Lock()
	entry, ok := m.active[userID]
	if !ok {
		m.mu.Unlock()
		return "", AttemptResult{}, ErrNoActiveSession
	}
	if !entry.sess.IsComplete() {
		m.mu.Unlock()
		return "", AttemptResult{}, ErrSessionNotComplete
	}
	if entry.submitting {
		m.mu.Unlock()
		return "", AttemptResult{}, ErrSubmitInFlight
	}
	if entry.result == nil {
		result := entry.sess.Score()
		entry.result = &result
	}
	entry.submitting = true

	attempt := Attempt{
		QuizSetID:   entry.quizSetID,
		UserID:      userID,
		CharacterID: entry.characterID,
		Answers:     entry.sess.Answers(),
		Result:      *entry.result,
		StartedAt:   entry.sess.StartedAt(),
		CompletedAt: time.Now(),
	}
	m.mu.Unlock()

	attemptID, err := m.sink.SubmitAttempt(ctx, attempt)

	m.mu.Lock()
	defer m.mu.Unlock()
	entry.submitting = false

	if err != nil {
		return "", AttemptResult{}, &SubmissionError{Err: err}
	}

	// A sessão só é descartada depois da confirmação do sink.
	if m.active[userID] == entry {
		delete(m.active, userID)
	}
	return attemptID, attempt.Result, nil
}

func (m *Manager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, userID)
}
