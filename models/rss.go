package models

import "time"

type RssItem struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Title       string     `json:"title" gorm:"not null"`
	Link        string     `json:"link" gorm:"uniqueIndex;not null"`
	SourceName  string     `json:"source_name"`
	Summary     string     `json:"summary" gorm:"type:text"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
