package community

// CommunityStats espelha o painel público da comunidade.
type CommunityStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalQuizSets    int64 `json:"total_quiz_sets"`
	TotalCharacters  int64 `json:"total_characters"`
	TotalCompletions int64 `json:"total_completions"`
}
