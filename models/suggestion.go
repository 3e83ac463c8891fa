package models

import "time"

type SuggestionType string

const (
	SuggestionTypeFeature    SuggestionType = "feature"
	SuggestionTypeCorrection SuggestionType = "correction"
	SuggestionTypeOther      SuggestionType = "other"
)

type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusAccepted SuggestionStatus = "accepted"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

type Suggestion struct {
	ID         uint             `json:"id" gorm:"primarykey"`
	AppID      *uint            `json:"app_id" gorm:"index"`
	UserID     uint             `json:"user_id" gorm:"not null;index"`
	Type       SuggestionType   `json:"type" gorm:"default:'other'"`
	Title      string           `json:"title" gorm:"not null"`
	Content    string           `json:"content" gorm:"type:text"`
	Status     SuggestionStatus `json:"status" gorm:"default:'pending'"`
	ReviewNote string           `json:"review_note"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
