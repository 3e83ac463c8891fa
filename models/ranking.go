package models

import (
	"time"
)

type RankingSource string

const (
	RankingSourceGithub      RankingSource = "github"
	RankingSourceOpenMCP     RankingSource = "openmcp"
	RankingSourceProductHunt RankingSource = "producthunt"
)

type RankingType string

const (
	RankingTypeDaily   RankingType = "daily"
	RankingTypeWeekly  RankingType = "weekly"
	RankingTypeMonthly RankingType = "monthly"
	RankingTypeYearly  RankingType = "yearly"
)

// Ranking is a period-scoped leaderboard. At most one ranking exists per
// (source, type, period_key); the unique index enforces this under concurrent
// aggregator runs. Rankings are never hard-deleted: Delete flips Status off so
// the period row stays visible to the upsert and can be reactivated later.
type Ranking struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	Name         string          `json:"name" gorm:"not null"`
	Source       RankingSource   `json:"source" gorm:"not null;uniqueIndex:idx_rankings_source_type_period"`
	Type         RankingType     `json:"type" gorm:"not null;uniqueIndex:idx_rankings_source_type_period"`
	PeriodKey    string          `json:"period_key" gorm:"not null;uniqueIndex:idx_rankings_source_type_period"`
	RecordsCount int             `json:"records_count" gorm:"default:0"`
	Status       bool            `json:"status" gorm:"default:true"`
	Records      []RankingRecord `json:"records,omitempty" gorm:"foreignKey:RankingID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

const EntityTypeApps = "apps"

// RankingRecord is one entity's entry within a ranking. Rank is assigned by
// the aggregator at insert time and is not recomputed from score afterwards.
type RankingRecord struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	RankingID  uint      `json:"ranking_id" gorm:"not null;uniqueIndex:idx_ranking_records_entity"`
	EntityID   uint      `json:"entity_id" gorm:"not null;uniqueIndex:idx_ranking_records_entity"`
	EntityName string    `json:"entity_name" gorm:"not null"`
	EntityType string    `json:"entity_type" gorm:"not null;default:'apps';uniqueIndex:idx_ranking_records_entity"`
	Score      int       `json:"score" gorm:"default:0"`
	Rank       int       `json:"rank" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
