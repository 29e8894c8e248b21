package quizset

type CreateQuestionDTO struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Answers       []string `json:"answers" validate:"required,min=2,unique,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Difficulty    int      `json:"difficulty" validate:"required,min=1,max=5"`
}

type CreateQuizSetDTO struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Sharing     Sharing             `json:"sharing" validate:"omitempty,oneof=PRIVATE PUBLIC UNLISTED"`
	Tags        []string            `json:"tags"`
	SourceSetID *string             `json:"source_set_id" validate:"omitempty,uuid"`
	Questions   []CreateQuestionDTO `json:"questions" validate:"required,min=1,dive"`
}

type UpdateQuizSetDTO struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Sharing     *Sharing `json:"sharing" validate:"omitempty,oneof=PRIVATE PUBLIC UNLISTED"`
	Tags        []string `json:"tags"`
}

type UpdateQuestionDTO struct {
	QuestionText  *string  `json:"question_text" validate:"omitempty,min=1"`
	Answers       []string `json:"answers" validate:"omitempty,min=2,unique,dive,required"`
	CorrectAnswer *string  `json:"correct_answer" validate:"omitempty,min=1"`
	Difficulty    *int     `json:"difficulty" validate:"omitempty,min=1,max=5"`
}

type QuizSetWithQuestionsDTO struct {
	QuizSet   *QuizSet    `json:"quiz_set"`
	Questions []*Question `json:"questions"`
}
