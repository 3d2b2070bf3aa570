package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attempt is one anonymous scored submission. Rows are append-only and
// never carry a respondent identity.
type Attempt struct {
	BaseModel
	QuizID  uuid.UUID                             `gorm:"type:uuid;index"`
	Answers datatypes.JSONType[map[string]string] `gorm:"type:jsonb"` // questionID -> optionID
	Score   int
	Total   int
}

// LinkClick records a respondent activating the completion page's
// external-link button. Append-only, anonymous.
type LinkClick struct {
	BaseModel
	QuizID    uuid.UUID `gorm:"type:uuid;index"`
	ButtonURL string
}
