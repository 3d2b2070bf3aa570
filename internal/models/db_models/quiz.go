package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ButtonActionRetake = "retake"
	ButtonActionURL    = "url"
)

// FinalPageStyles holds the optional visual overrides for the completion
// screen. Every field has a frontend-side default, so an empty value means
// "use the default", not "render nothing".
type FinalPageStyles struct {
	BackgroundColor       string `json:"backgroundColor,omitempty"`
	BackgroundImage       string `json:"backgroundImage,omitempty"`
	BackgroundOverlay     string `json:"backgroundOverlay,omitempty"`
	CardBackgroundColor   string `json:"cardBackgroundColor,omitempty"`
	CardBorderRadius      string `json:"cardBorderRadius,omitempty"`
	CardShadow            string `json:"cardShadow,omitempty"` // none|sm|md|lg|xl|2xl
	TitleFontSize         string `json:"titleFontSize,omitempty"`
	TitleColor            string `json:"titleColor,omitempty"`
	TitleFontWeight       string `json:"titleFontWeight,omitempty"`
	BodyFontSize          string `json:"bodyFontSize,omitempty"`
	BodyColor             string `json:"bodyColor,omitempty"`
	ScoreFontSize         string `json:"scoreFontSize,omitempty"`
	ScoreColor            string `json:"scoreColor,omitempty"`
	IconColor             string `json:"iconColor,omitempty"`
	IconBackgroundColor   string `json:"iconBackgroundColor,omitempty"`
	ShowIcon              *bool  `json:"showIcon,omitempty"`
	ButtonBackgroundColor string `json:"buttonBackgroundColor,omitempty"`
	ButtonTextColor       string `json:"buttonTextColor,omitempty"`
	ButtonBorderRadius    string `json:"buttonBorderRadius,omitempty"`
	ButtonFontSize        string `json:"buttonFontSize,omitempty"`
}

type FinalPageConfig struct {
	Title        string           `json:"title"`
	Body         string           `json:"body"`
	ButtonText   string           `json:"buttonText"`
	ButtonAction string           `json:"buttonAction"` // retake|url
	ButtonURL    string           `json:"buttonUrl,omitempty"`
	Styles       *FinalPageStyles `json:"styles,omitempty"`
}

func DefaultFinalPage() FinalPageConfig {
	return FinalPageConfig{
		Title:        "Congratulations!",
		Body:         "You have completed the quiz.",
		ButtonText:   "Retake Quiz",
		ButtonAction: ButtonActionRetake,
	}
}

type Quiz struct {
	BaseModel
	Title       string
	Description string
	Slug        string `gorm:"uniqueIndex"`
	IsPublic    bool
	AuthorID    uuid.UUID                           `gorm:"type:uuid;index"`
	FinalPage   datatypes.JSONType[FinalPageConfig] `gorm:"type:jsonb"`

	Questions  []Question  `gorm:"constraint:OnDelete:CASCADE"`
	Attempts   []Attempt   `gorm:"constraint:OnDelete:CASCADE"`
	LinkClicks []LinkClick `gorm:"constraint:OnDelete:CASCADE"`
}
