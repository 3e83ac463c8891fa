package models

import "time"

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Claim is a user's assertion of ownership over an app listing, pending
// admin review. Token is handed to the claimant for out-of-band verification.
type Claim struct {
	ID         uint        `json:"id" gorm:"primarykey"`
	AppID      uint        `json:"app_id" gorm:"not null;index"`
	App        *App        `json:"app,omitempty" gorm:"foreignKey:AppID"`
	UserID     uint        `json:"user_id" gorm:"not null;index"`
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProofURL   string      `json:"proof_url"`
	Token      string      `json:"token" gorm:"uniqueIndex;not null"`
	Status     ClaimStatus `json:"status" gorm:"default:'pending'"`
	ReviewNote string      `json:"review_note"`
	ReviewedBy *uint       `json:"reviewed_by"`
	ReviewedAt *time.Time  `json:"reviewed_at"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
