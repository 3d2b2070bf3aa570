package response_models

import "snapquiz/internal/models/db_models"

type QuizSummaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Slug          string `json:"slug"`
	IsPublic      bool   `json:"isPublic"`
	QuestionCount int64  `json:"questionCount"`
	AttemptCount  int64  `json:"attemptCount"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type OptionResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
	Order     int    `json:"order"`
}

type QuestionResponse struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Order   int              `json:"order"`
	Options []OptionResponse `json:"options"`
}

// QuizDetailResponse is the owner view: correctness flags included.
type QuizDetailResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description,omitempty"`
	Slug        string                    `json:"slug"`
	IsPublic    bool                      `json:"isPublic"`
	FinalPage   db_models.FinalPageConfig `json:"finalPage"`
	Questions   []QuestionResponse        `json:"questions"`
	CreatedAt   int64                     `json:"createdAt"`
	UpdatedAt   int64                     `json:"updatedAt"`
}

type ExportOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
	Order     int    `json:"order"`
}

type ExportQuestion struct {
	Text    string         `json:"text"`
	Order   int            `json:"order"`
	Options []ExportOption `json:"options"`
}

// QuizExport is the downloadable snapshot of a quiz. Ids are stripped so a
// re-import creates fresh rows.
type QuizExport struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description,omitempty"`
	IsPublic    bool                      `json:"isPublic"`
	FinalPage   db_models.FinalPageConfig `json:"finalPage"`
	Questions   []ExportQuestion          `json:"questions"`
	ExportedAt  string                    `json:"exportedAt"`
}
