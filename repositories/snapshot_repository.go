package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type SnapshotRepository interface {
	GetRecentDaily(repoID uint, year, month, limit int) ([]models.Snapshot, error)
	GetDaily(repoID uint, year, month, day int) (*models.Snapshot, error)
	GetRecentWeekly(repoID uint, year, limit int) ([]models.SnapshotWeekly, error)
	GetMonthly(repoID uint, year, month int) (*models.SnapshotMonthly, error)
	UpsertDaily(snapshot *models.Snapshot) error
	UpsertWeekly(snapshot *models.SnapshotWeekly) error
	UpsertMonthly(snapshot *models.SnapshotMonthly) error
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) GetRecentDaily(repoID uint, year, month, limit int) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot
	err := r.db.Where("repo_id = ? AND year = ? AND month = ?", repoID, year, month).
		Order("day desc").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

func (r *snapshotRepository) GetDaily(repoID uint, year, month, day int) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	err := r.db.Where("repo_id = ? AND year = ? AND month = ? AND day = ?", repoID, year, month, day).
		First(&snapshot).Error
	return &snapshot, err
}

func (r *snapshotRepository) GetRecentWeekly(repoID uint, year, limit int) ([]models.SnapshotWeekly, error) {
	var snapshots []models.SnapshotWeekly
	err := r.db.Where("repo_id = ? AND year = ?", repoID, year).
		Order("week desc").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

func (r *snapshotRepository) GetMonthly(repoID uint, year, month int) (*models.SnapshotMonthly, error) {
	var snapshot models.SnapshotMonthly
	err := r.db.Where("repo_id = ? AND year = ? AND month = ?", repoID, year, month).
		First(&snapshot).Error
	return &snapshot, err
}

func (r *snapshotRepository) UpsertDaily(snapshot *models.Snapshot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "repo_id"}, {Name: "year"}, {Name: "month"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "forks", "watchers", "updated_at"}),
	}).Create(snapshot).Error
}

func (r *snapshotRepository) UpsertWeekly(snapshot *models.SnapshotWeekly) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "repo_id"}, {Name: "year"}, {Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "forks", "watchers", "updated_at"}),
	}).Create(snapshot).Error
}

func (r *snapshotRepository) UpsertMonthly(snapshot *models.SnapshotMonthly) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "repo_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "forks", "watchers", "updated_at"}),
	}).Create(snapshot).Error
}
