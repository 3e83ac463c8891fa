package models

import "time"

// Repo tracks the GitHub repository behind an app listing. Counters are
// refreshed by the snapshot collector.
type Repo struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	AppID      *uint      `json:"app_id"`
	FullName   string     `json:"full_name" gorm:"uniqueIndex;not null"`
	Stars      int        `json:"stars" gorm:"default:0"`
	Forks      int        `json:"forks" gorm:"default:0"`
	Watchers   int        `json:"watchers" gorm:"default:0"`
	LastSyncAt *time.Time `json:"last_sync_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Snapshot is a daily point-in-time capture of a repo's popularity counters.
type Snapshot struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RepoID    uint      `json:"repo_id" gorm:"not null;uniqueIndex:idx_snapshots_repo_day"`
	Year      int       `json:"year" gorm:"not null;uniqueIndex:idx_snapshots_repo_day"`
	Month     int       `json:"month" gorm:"not null;uniqueIndex:idx_snapshots_repo_day"`
	Day       int       `json:"day" gorm:"not null;uniqueIndex:idx_snapshots_repo_day"`
	Stars     int       `json:"stars" gorm:"default:0"`
	Forks     int       `json:"forks" gorm:"default:0"`
	Watchers  int       `json:"watchers" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SnapshotWeekly struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RepoID    uint      `json:"repo_id" gorm:"not null;uniqueIndex:idx_snapshots_weekly_repo_week"`
	Year      int       `json:"year" gorm:"not null;uniqueIndex:idx_snapshots_weekly_repo_week"`
	Week      int       `json:"week" gorm:"not null;uniqueIndex:idx_snapshots_weekly_repo_week"`
	Stars     int       `json:"stars" gorm:"default:0"`
	Forks     int       `json:"forks" gorm:"default:0"`
	Watchers  int       `json:"watchers" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SnapshotMonthly struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RepoID    uint      `json:"repo_id" gorm:"not null;uniqueIndex:idx_snapshots_monthly_repo_month"`
	Year      int       `json:"year" gorm:"not null;uniqueIndex:idx_snapshots_monthly_repo_month"`
	Month     int       `json:"month" gorm:"not null;uniqueIndex:idx_snapshots_monthly_repo_month"`
	Stars     int       `json:"stars" gorm:"default:0"`
	Forks     int       `json:"forks" gorm:"default:0"`
	Watchers  int       `json:"watchers" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectTrends holds star-count deltas for one repo across the four cadences.
type ProjectTrends struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
	Yearly  int `json:"yearly"`
}
