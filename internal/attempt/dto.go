package attempt

import util "github.com/saulo-duarte/questlog-lambda/internal/utils"

// AttemptStats resume o histórico de tentativas de um usuário.
type AttemptStats struct {
	Total        int     `json:"total"`
	AverageScore float64 `json:"average_score"`
	BestScore    int     `json:"best_score"`
	Perfect      int     `json:"perfect"`
}

type RecentCompletion struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	DisplayName string             `json:"display_name"`
	AvatarURL   string             `json:"avatar_url"`
	QuizTitle   string             `json:"quiz_title"`
	Score       int                `json:"score"`
	CompletedAt util.LocalDateTime `json:"completed_at"`
}
