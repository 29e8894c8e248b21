package session_test

import (
	"errors"
	"testing"

	"github.com/saulo-duarte/questlog-lambda/internal/session"
)

func fourQuestions() []session.Question {
	return []session.Question{
		{ID: "q1", Prompt: "Capital do Brasil?", Options: []string{"Brasília", "Rio de Janeiro", "São Paulo"}, CorrectAnswer: "Brasília", Difficulty: 1},
		{ID: "q2", Prompt: "Quanto é 7 x 8?", Options: []string{"54", "56", "58"}, CorrectAnswer: "56", Difficulty: 2},
		{ID: "q3", Prompt: "Símbolo químico do ouro?", Options: []string{"Au", "Ag", "Or"}, CorrectAnswer: "Au", Difficulty: 3},
		{ID: "q4", Prompt: "Ano do fim da Segunda Guerra?", Options: []string{"1944", "1945", "1946"}, CorrectAnswer: "1945", Difficulty: 4},
	}
}

func TestStart(t *testing.T) {
	t.Run("EmptyQuiz", func(t *testing.T) {
		_, err := session.Start(nil)
		if !errors.Is(err, session.ErrEmptyQuiz) {
			t.Fatalf("Start com conjunto vazio deveria retornar ErrEmptyQuiz, retornou: %v", err)
		}
	})

	t.Run("FreshSession", func(t *testing.T) {
		sess, err := session.Start(fourQuestions())
		if err != nil {
			t.Fatalf("Start falhou: %v", err)
		}

		if sess.CurrentIndex() != 0 {
			t.Errorf("CurrentIndex inicial deveria ser 0, é %d", sess.CurrentIndex())
		}
		if len(sess.Answers()) != 0 {
			t.Errorf("Answers inicial deveria ser vazio, tem %d entradas", len(sess.Answers()))
		}
		if sess.IsComplete() {
			t.Error("Sessão recém-criada não deveria estar completa")
		}
		if sess.StartedAt().IsZero() {
			t.Error("StartedAt não deveria ser zero")
		}
		if sess.TotalQuestions() != 4 {
			t.Errorf("TotalQuestions deveria ser 4, é %d", sess.TotalQuestions())
		}
	})

	t.Run("MalformedQuestionRejected", func(t *testing.T) {
		bad := fourQuestions()
		bad[2].CorrectAnswer = "resposta-que-nao-existe"

		if _, err := session.Start(bad); err == nil {
			t.Fatal("Start deveria rejeitar pergunta cuja resposta correta não está nas alternativas")
		}
	})

	t.Run("DuplicateQuestionIDRejected", func(t *testing.T) {
		bad := fourQuestions()
		bad[1].ID = bad[0].ID

		if _, err := session.Start(bad); err == nil {
			t.Fatal("Start deveria rejeitar ids de pergunta duplicados")
		}
	})
}

func TestRecordAnswer(t *testing.T) {
	t.Run("StrictValidation", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())

		if err := sess.RecordAnswer("q-fantasma", "Brasília"); !errors.Is(err, session.ErrUnknownQuestion) {
			t.Errorf("Resposta para pergunta desconhecida deveria falhar com ErrUnknownQuestion, falhou com: %v", err)
		}
		if err := sess.RecordAnswer("q1", "Curitiba"); !errors.Is(err, session.ErrInvalidAnswer) {
			t.Errorf("Alternativa inexistente deveria falhar com ErrInvalidAnswer, falhou com: %v", err)
		}
		if len(sess.Answers()) != 0 {
			t.Error("Operações rejeitadas não deveriam ter alterado as respostas")
		}
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())

		if err := sess.RecordAnswer("q1", "Rio de Janeiro"); err != nil {
			t.Fatalf("RecordAnswer falhou: %v", err)
		}
		if err := sess.RecordAnswer("q1", "Brasília"); err != nil {
			t.Fatalf("RecordAnswer falhou: %v", err)
		}

		answer, ok := sess.Answer("q1")
		if !ok || answer != "Brasília" {
			t.Errorf("A última resposta deveria vencer. Esperado: Brasília, Recebido: %q", answer)
		}
		if len(sess.Answers()) != 1 {
			t.Errorf("Re-responder não deveria criar entrada nova; há %d entradas", len(sess.Answers()))
		}
	})

	t.Run("CompletedSessionRejectsAnswers", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())
		sess.Complete()

		if err := sess.RecordAnswer("q1", "Brasília"); !errors.Is(err, session.ErrSessionComplete) {
			t.Errorf("Sessão completa deveria rejeitar respostas com ErrSessionComplete, falhou com: %v", err)
		}
	})
}

func TestNavigation(t *testing.T) {
	t.Run("AdvanceClampedAtLastIndex", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())

		for i := 0; i < 10; i++ {
			sess.Advance()
		}
		if sess.CurrentIndex() != 3 {
			t.Errorf("Advance além do fim deveria ser no-op no índice 3, índice é %d", sess.CurrentIndex())
		}
	})

	t.Run("RetreatClampedAtZero", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())

		sess.Retreat()
		if sess.CurrentIndex() != 0 {
			t.Errorf("Retreat no índice 0 deveria ser no-op, índice é %d", sess.CurrentIndex())
		}

		sess.Advance()
		sess.Advance()
		sess.Retreat()
		if sess.CurrentIndex() != 1 {
			t.Errorf("Índice esperado 1 após avançar duas e voltar uma, é %d", sess.CurrentIndex())
		}
	})

	t.Run("AdvanceDoesNotRequireAnswer", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())

		// Navegação é desguardada: o gate do botão "próxima" é da UI.
		sess.Advance()
		if sess.CurrentIndex() != 1 {
			t.Errorf("Advance sem resposta registrada deveria funcionar; índice é %d", sess.CurrentIndex())
		}
	})

	t.Run("CurrentQuestionFollowsIndex", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())

		sess.Advance()
		if sess.CurrentQuestion().ID != "q2" {
			t.Errorf("Pergunta atual deveria ser q2, é %s", sess.CurrentQuestion().ID)
		}
	})
}

func TestScore(t *testing.T) {
	t.Run("AllCorrect", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())
		for _, q := range fourQuestions() {
			if err := sess.RecordAnswer(q.ID, q.CorrectAnswer); err != nil {
				t.Fatalf("RecordAnswer falhou: %v", err)
			}
		}
		sess.Complete()

		result := sess.Score()
		if result.Score != 100 {
			t.Errorf("Score esperado 100, recebido %d", result.Score)
		}
		if result.CorrectCount != 4 {
			t.Errorf("CorrectCount esperado 4, recebido %d", result.CorrectCount)
		}
	})

	t.Run("UnansweredCountAsIncorrect", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())
		if err := sess.RecordAnswer("q1", "Brasília"); err != nil {
			t.Fatalf("RecordAnswer falhou: %v", err)
		}
		sess.Complete()

		result := sess.Score()
		if result.Score != 25 {
			t.Errorf("1 acerto em 4 deveria dar score 25, recebido %d", result.Score)
		}
		if result.CorrectCount != 1 {
			t.Errorf("CorrectCount esperado 1, recebido %d", result.CorrectCount)
		}
		if result.PerQuestion["q1"] != true {
			t.Error("q1 deveria constar como correta")
		}
		for _, id := range []string{"q2", "q3", "q4"} {
			if result.PerQuestion[id] {
				t.Errorf("%s sem resposta deveria constar como incorreta", id)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		sess, _ := session.Start(fourQuestions())
		_ = sess.RecordAnswer("q1", "Brasília")
		_ = sess.RecordAnswer("q2", "54")
		sess.Complete()

		first := sess.Score()
		second := sess.Score()

		if first.Score != second.Score || first.CorrectCount != second.CorrectCount {
			t.Errorf("Score não é idempotente: %+v vs %+v", first, second)
		}
	})

	t.Run("InsertionOrderIrrelevant", func(t *testing.T) {
		forward, _ := session.Start(fourQuestions())
		backward, _ := session.Start(fourQuestions())

		questions := fourQuestions()
		for i := 0; i < len(questions); i++ {
			_ = forward.RecordAnswer(questions[i].ID, questions[i].CorrectAnswer)
			j := len(questions) - 1 - i
			_ = backward.RecordAnswer(questions[j].ID, questions[j].CorrectAnswer)
		}

		if forward.Score().Score != backward.Score().Score {
			t.Error("A ordem de inserção das respostas não deveria afetar o score")
		}
	})

	t.Run("BoundsAndRounding", func(t *testing.T) {
		// 3 perguntas, 1 acerto: 33.33 arredonda para 33; 2 acertos: 66.67 para 67.
		questions := fourQuestions()[:3]

		one, _ := session.Start(questions)
		_ = one.RecordAnswer("q1", "Brasília")
		if got := one.Score().Score; got != 33 {
			t.Errorf("1/3 deveria arredondar para 33, recebido %d", got)
		}

		two, _ := session.Start(questions)
		_ = two.RecordAnswer("q1", "Brasília")
		_ = two.RecordAnswer("q2", "56")
		if got := two.Score().Score; got != 67 {
			t.Errorf("2/3 deveria arredondar para 67, recebido %d", got)
		}

		none, _ := session.Start(questions)
		if got := none.Score().Score; got != 0 {
			t.Errorf("0 acertos deveria dar 0, recebido %d", got)
		}
	})
}

func TestCompleteIsTerminal(t *testing.T) {
	sess, _ := session.Start(fourQuestions())
	sess.Advance()
	sess.Complete()

	sess.Advance()
	sess.Retreat()
	sess.Complete()

	if !sess.IsComplete() {
		t.Error("Sessão deveria continuar completa")
	}
	if sess.CurrentIndex() != 1 {
		t.Errorf("Navegação após Complete deveria ser no-op; índice é %d", sess.CurrentIndex())
	}
}
