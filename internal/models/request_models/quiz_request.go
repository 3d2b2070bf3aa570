package request_models

import "snapquiz/internal/models/db_models"

type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	IsPublic    *bool  `json:"isPublic"`
}

type OptionInput struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
	Order     int    `json:"order" binding:"min=0"`
}

type QuestionInput struct {
	Text    string        `json:"text" binding:"required"`
	Order   int           `json:"order" binding:"min=0"`
	Options []OptionInput `json:"options" binding:"required,min=2,dive"`
}

// UpdateQuizRequest is a partial update: nil fields are left untouched.
// A non-nil Questions slice replaces the quiz's question set wholesale.
type UpdateQuizRequest struct {
	Title       *string                    `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string                    `json:"description" binding:"omitempty,max=1000"`
	IsPublic    *bool                      `json:"isPublic"`
	FinalPage   *db_models.FinalPageConfig `json:"finalPage"`
	Questions   []QuestionInput            `json:"questions" binding:"omitempty,dive"`
}
