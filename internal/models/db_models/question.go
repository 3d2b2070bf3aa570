package db_models

import "github.com/google/uuid"

// Position is the zero-based presentation order. The column is named
// "position" because "order" is reserved in postgres.
type Question struct {
	BaseModel
	QuizID   uuid.UUID `gorm:"type:uuid;index"`
	Text     string
	Position int `gorm:"column:position"`

	Options []Option `gorm:"constraint:OnDelete:CASCADE"`
}

type Option struct {
	BaseModel
	QuestionID uuid.UUID `gorm:"type:uuid;index"`
	Text       string
	IsCorrect  bool
	Position   int `gorm:"column:position"`
}
