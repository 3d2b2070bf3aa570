package response_models

import "snapquiz/internal/models/db_models"

// Play-side views never carry correctness flags.

type PlayOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type PlayQuestion struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Order   int          `json:"order"`
	Options []PlayOption `json:"options"`
}

type PlayQuizResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description,omitempty"`
	Questions   []PlayQuestion            `json:"questions"`
	FinalPage   db_models.FinalPageConfig `json:"finalPage"`
}

type SubmitResultResponse struct {
	Score      int                       `json:"score"`
	Total      int                       `json:"total"`
	Percentage int                       `json:"percentage"`
	FinalPage  db_models.FinalPageConfig `json:"finalPage"`
}
