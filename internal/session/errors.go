package session

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuiz indica uma tentativa de iniciar sessão sem perguntas.
	ErrEmptyQuiz = errors.New("quiz has no questions")

	// ErrUnknownQuestion indica resposta para uma pergunta fora do conjunto carregado.
	ErrUnknownQuestion = errors.New("question does not belong to this quiz")

	// ErrInvalidAnswer indica uma resposta que não é uma das alternativas da pergunta.
	ErrInvalidAnswer = errors.New("answer is not one of the question alternatives")

	// ErrSessionComplete indica mutação de uma sessão já finalizada.
	ErrSessionComplete = errors.New("session is already complete")

	// ErrSessionNotComplete indica submissão de uma sessão ainda em andamento.
	ErrSessionNotComplete = errors.New("session is not complete")

	// ErrNoActiveSession indica operação sem sessão ativa para o usuário.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSubmitInFlight indica uma segunda submissão enquanto a primeira está em andamento.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrQuizSetNotFound indica que o conjunto de perguntas não existe.
	ErrQuizSetNotFound = errors.New("quiz set not found")

	// ErrForbidden indica acesso a um conjunto privado de outro usuário.
	ErrForbidden = errors.New("quiz set is not accessible")
)

// SubmissionError envolve falhas transitórias do sink de tentativas.
// A sessão permanece completa e pode ser resubmetida com o mesmo resultado.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("attempt submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
