package models

import (
	"time"

	"gorm.io/gorm"
)

type AppType string

const (
	AppTypeClient      AppType = "client"
	AppTypeServer      AppType = "server"
	AppTypeApplication AppType = "application"
)

type AppStatus string

const (
	AppStatusPending  AppStatus = "pending"
	AppStatusApproved AppStatus = "approved"
	AppStatusRejected AppStatus = "rejected"
)

type PublishStatus string

const (
	PublishStatusOnline  PublishStatus = "online"
	PublishStatusOffline PublishStatus = "offline"
)

type AppSource string

const (
	AppSourceSubmission AppSource = "submission"
	AppSourceAutomatic  AppSource = "automatic"
	AppSourceAdmin      AppSource = "admin"
)

// App is a listed MCP client/server/application. (Name, Type) identifies a
// listing logically; Website and Github are alternative lookup keys used by
// the ranking aggregator to deduplicate automatic submissions.
type App struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Name          string         `json:"name" gorm:"not null;uniqueIndex:idx_apps_name_type"`
	Type          AppType        `json:"type" gorm:"not null;uniqueIndex:idx_apps_name_type"`
	Slug          string         `json:"slug" gorm:"index"`
	Description   string         `json:"description" gorm:"type:text"`
	Website       string         `json:"website" gorm:"index"`
	Github        string         `json:"github" gorm:"index"`
	Icon          string         `json:"icon"`
	Stars         int            `json:"stars" gorm:"default:0"`
	Status        AppStatus      `json:"status" gorm:"default:'pending'"`
	PublishStatus PublishStatus  `json:"publish_status" gorm:"default:'offline'"`
	Source        AppSource      `json:"source" gorm:"default:'submission'"`
	CategoryID    *uint          `json:"category_id"`
	Category      *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags          []Tag          `json:"tags,omitempty" gorm:"many2many:app_tags;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
