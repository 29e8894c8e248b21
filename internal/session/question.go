package session

import "fmt"

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question é a forma validada e fortemente tipada de uma pergunta dentro
// de uma sessão. Registros malformados são rejeitados na fronteira, antes
// de entrarem no motor.
type Question struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectAnswer string
	Difficulty    int
}

func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if q.Prompt == "" {
		return fmt.Errorf("question %s has no prompt", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s needs at least 2 options, got %d", q.ID, len(q.Options))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %s has an empty option", q.ID)
		}
		if seen[opt] {
			return fmt.Errorf("question %s has duplicate option %q", q.ID, opt)
		}
		seen[opt] = true
	}

	if !seen[q.CorrectAnswer] {
		return fmt.Errorf("question %s: correct answer %q is not one of the options", q.ID, q.CorrectAnswer)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("question %s: difficulty %d out of range [%d,%d]", q.ID, q.Difficulty, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// HasOption reporta se a alternativa pertence à pergunta (comparação exata).
func (q Question) HasOption(answer string) bool {
	for _, opt := range q.Options {
		if opt == answer {
			return true
		}
	}
	return false
}
