package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/saulo-duarte/questlog-lambda/internal/session"
)

type fakeSource struct {
	questions map[string][]session.Question
}

func (f *fakeSource) LoadQuestions(ctx context.Context, quizSetID, userID string) ([]session.Question, error) {
	qs, ok := f.questions[quizSetID]
	if !ok {
		return nil, session.ErrQuizSetNotFound
	}
	return qs, nil
}

type fakeSink struct {
	failNext  bool
	submitted []session.Attempt
}

func (f *fakeSink) SubmitAttempt(ctx context.Context, a session.Attempt) (string, error) {
	if f.failNext {
		f.failNext = false
		return "", errors.New("banco indisponível")
	}
	f.submitted = append(f.submitted, a)
	return fmt.Sprintf("attempt-%d", len(f.submitted)), nil
}

func newManagerForTest() (*session.Manager, *fakeSink) {
	source := &fakeSource{
		questions: map[string][]session.Question{
			"set-1": fourQuestions(),
			"set-2": {
				{ID: "z1", Prompt: "Maior oceano?", Options: []string{"Atlântico", "Pacífico"}, CorrectAnswer: "Pacífico", Difficulty: 1},
			},
		},
	}
	sink := &fakeSink{}
	return session.NewManager(source, sink), sink
}

const testUser = "user-1"

func TestManagerStartSession(t *testing.T) {
	t.Run("UnknownQuizSet", func(t *testing.T) {
		m, _ := newManagerForTest()

		_, err := m.StartSession(context.Background(), testUser, "set-fantasma", "")
		if !errors.Is(err, session.ErrQuizSetNotFound) {
			t.Fatalf("Conjunto inexistente deveria falhar com ErrQuizSetNotFound, falhou com: %v", err)
		}
	})

	t.Run("SecondStartDiscardsFirst", func(t *testing.T) {
		m, sink := newManagerForTest()
		ctx := context.Background()

		if _, err := m.StartSession(ctx, testUser, "set-1", ""); err != nil {
			t.Fatalf("StartSession falhou: %v", err)
		}
		if _, err := m.RecordAnswer(testUser, "q1", "Brasília"); err != nil {
			t.Fatalf("RecordAnswer falhou: %v", err)
		}

		if _, err := m.StartSession(ctx, testUser, "set-2", ""); err != nil {
			t.Fatalf("Segundo StartSession falhou: %v", err)
		}

		sess, quizSetID, err := m.CurrentSession(testUser)
		if err != nil {
			t.Fatalf("CurrentSession falhou: %v", err)
		}
		if quizSetID != "set-2" {
			t.Errorf("Sessão ativa deveria ser do set-2, é do %s", quizSetID)
		}
		if len(sess.Answers()) != 0 {
			t.Errorf("A sessão substituída não deveria vazar respostas; há %d", len(sess.Answers()))
		}
		if len(sink.submitted) != 0 {
			t.Error("Descartar uma sessão não deveria persistir nada")
		}
	})

	t.Run("NoActiveSession", func(t *testing.T) {
		m, _ := newManagerForTest()

		if _, _, err := m.CurrentSession(testUser); !errors.Is(err, session.ErrNoActiveSession) {
			t.Errorf("Sem sessão ativa deveria falhar com ErrNoActiveSession, falhou com: %v", err)
		}
	})
}

func TestManagerSubmit(t *testing.T) {
	t.Run("RequiresComplete", func(t *testing.T) {
		m, _ := newManagerForTest()
		ctx := context.Background()

		_, _ = m.StartSession(ctx, testUser, "set-1", "")

		_, _, err := m.Submit(ctx, testUser)
		if !errors.Is(err, session.ErrSessionNotComplete) {
			t.Fatalf("Submit antes de Complete deveria falhar com ErrSessionNotComplete, falhou com: %v", err)
		}
	})

	t.Run("SuccessDiscardsSession", func(t *testing.T) {
		m, sink := newManagerForTest()
		ctx := context.Background()

		_, _ = m.StartSession(ctx, testUser, "set-1", "")
		_, _ = m.RecordAnswer(testUser, "q1", "Brasília")
		if _, err := m.Complete(testUser); err != nil {
			t.Fatalf("Complete falhou: %v", err)
		}

		attemptID, result, err := m.Submit(ctx, testUser)
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}
		if attemptID == "" {
			t.Error("Submit deveria retornar o id da tentativa")
		}
		if result.Score != 25 {
			t.Errorf("Score esperado 25, recebido %d", result.Score)
		}
		if len(sink.submitted) != 1 {
			t.Fatalf("O sink deveria ter recebido exatamente 1 tentativa, recebeu %d", len(sink.submitted))
		}

		// Após confirmação, a sessão não existe mais: submeter de novo é erro.
		if _, _, err := m.Submit(ctx, testUser); !errors.Is(err, session.ErrNoActiveSession) {
			t.Errorf("Re-submeter após sucesso deveria falhar com ErrNoActiveSession, falhou com: %v", err)
		}
	})

	t.Run("FailureKeepsSessionAndResultForRetry", func(t *testing.T) {
		m, sink := newManagerForTest()
		ctx := context.Background()

		_, _ = m.StartSession(ctx, testUser, "set-1", "")
		_, _ = m.RecordAnswer(testUser, "q1", "Brasília")
		firstResult, err := m.Complete(testUser)
		if err != nil {
			t.Fatalf("Complete falhou: %v", err)
		}

		sink.failNext = true
		_, _, err = m.Submit(ctx, testUser)

		var subErr *session.SubmissionError
		if !errors.As(err, &subErr) {
			t.Fatalf("Falha do sink deveria virar SubmissionError, veio: %v", err)
		}

		sess, _, err := m.CurrentSession(testUser)
		if err != nil {
			t.Fatalf("A sessão deveria sobreviver à falha de submissão: %v", err)
		}
		if !sess.IsComplete() {
			t.Error("A sessão deveria continuar completa após a falha")
		}

		attemptID, retryResult, err := m.Submit(ctx, testUser)
		if err != nil {
			t.Fatalf("Retry de Submit falhou: %v", err)
		}
		if attemptID == "" {
			t.Error("Retry deveria retornar o id da tentativa")
		}
		if retryResult.Score != firstResult.Score || retryResult.CorrectCount != firstResult.CorrectCount {
			t.Errorf("O retry não deveria recalcular o resultado: %+v vs %+v", firstResult, retryResult)
		}
		if len(sink.submitted) != 1 {
			t.Fatalf("Apenas a submissão bem-sucedida deveria chegar ao sink; chegaram %d", len(sink.submitted))
		}
		if sink.submitted[0].Result.Score != firstResult.Score {
			t.Errorf("O resultado persistido (%d) difere do resumo exibido (%d)",
				sink.submitted[0].Result.Score, firstResult.Score)
		}
	})
}

func TestManagerReset(t *testing.T) {
	m, _ := newManagerForTest()
	ctx := context.Background()

	_, _ = m.StartSession(ctx, testUser, "set-1", "")
	_, _ = m.Complete(testUser)

	m.Reset(testUser)

	if _, _, err := m.CurrentSession(testUser); !errors.Is(err, session.ErrNoActiveSession) {
		t.Errorf("Reset deveria descartar a sessão; CurrentSession retornou: %v", err)
	}
}

func TestManagerCompleteIsIdempotentOnResult(t *testing.T) {
	m, _ := newManagerForTest()
	ctx := context.Background()

	_, _ = m.StartSession(ctx, testUser, "set-1", "")
	_, _ = m.RecordAnswer(testUser, "q2", "56")

	first, err := m.Complete(testUser)
	if err != nil {
		t.Fatalf("Complete falhou: %v", err)
	}
	second, err := m.Complete(testUser)
	if err != nil {
		t.Fatalf("Segundo Complete falhou: %v", err)
	}

	if first.Score != second.Score {
		t.Errorf("Complete repetido não deveria mudar o resultado: %d vs %d", first.Score, second.Score)
	}
}

type blockingSink struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSink) SubmitAttempt(ctx context.Context, a session.Attempt) (string, error) {
	close(b.entered)
	<-b.release
	return "attempt-lento", nil
}

func TestManagerSubmitInFlight(t *testing.T) {
	source := &fakeSource{questions: map[string][]session.Question{"set-1": fourQuestions()}}
	sink := &blockingSink{entered: make(chan struct{}), release: make(chan struct{})}
	m := session.NewManager(source, sink)
	ctx := context.Background()

	_, _ = m.StartSession(ctx, testUser, "set-1", "")
	_, _ = m.Complete(testUser)

	done := make(chan error, 1)
	go func() {
		_, _, err := m.Submit(ctx, testUser)
		done <- err
	}()

	<-sink.entered

	if _, _, err := m.Submit(ctx, testUser); !errors.Is(err, session.ErrSubmitInFlight) {
		t.Errorf("Submit concorrente deveria falhar com ErrSubmitInFlight, falhou com: %v", err)
	}

	close(sink.release)
	if err := <-done; err != nil {
		t.Fatalf("A submissão original deveria ter sucesso: %v", err)
	}
}
