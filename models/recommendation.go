package models

import "time"

// Recommendation pins an app into a curated slot on the public site.
type Recommendation struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	AppID     uint      `json:"app_id" gorm:"not null;index"`
	App       *App      `json:"app,omitempty" gorm:"foreignKey:AppID"`
	Position  string    `json:"position" gorm:"not null"`
	Sort      int       `json:"sort" gorm:"default:0"`
	Status    bool      `json:"status" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
