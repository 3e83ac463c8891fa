package models

import "time"

type AdType string

const (
	AdTypeBanner  AdType = "banner"
	AdTypeListing AdType = "listing"
)

type AdStatus string

const (
	AdStatusPending AdStatus = "pending"
	AdStatusActive  AdStatus = "active"
	AdStatusExpired AdStatus = "expired"
)

type Ad struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"not null"`
	Type      AdType    `json:"type" gorm:"not null"`
	ImageURL  string    `json:"image_url"`
	TargetURL string    `json:"target_url"`
	Price     float64   `json:"price" gorm:"default:0"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    AdStatus  `json:"status" gorm:"default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
