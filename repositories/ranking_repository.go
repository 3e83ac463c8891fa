package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type RankingRepository interface {
	Create(ranking *models.Ranking) error
	Update(ranking *models.Ranking) error
	GetByID(id uint) (*models.Ranking, error)
	GetByPeriod(source models.RankingSource, rankingType models.RankingType, periodKey string) (*models.Ranking, error)
	Search(params models.RankingSearchParams) ([]models.Ranking, int64, error)
	Delete(id uint) error
	UpsertForPeriod(ranking *models.Ranking) (*models.Ranking, error)
	CreateRecords(records []models.RankingRecord) error
	CountRecords(rankingID uint) (int64, error)
	GetRecords(rankingID uint) ([]models.RankingRecord, error)
	WithTx(tx *gorm.DB) RankingRepository
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

func (r *rankingRepository) WithTx(tx *gorm.DB) RankingRepository {
	return &rankingRepository{db: tx}
}

func (r *rankingRepository) Create(ranking *models.Ranking) error {
	return r.db.Create(ranking).Error
}

func (r *rankingRepository) Update(ranking *models.Ranking) error {
	return r.db.Save(ranking).Error
}

func (r *rankingRepository) GetByID(id uint) (*models.Ranking, error) {
	var ranking models.Ranking
	err := r.db.Preload("Records", func(db *gorm.DB) *gorm.DB {
		return db.Order("ranking_records.rank asc")
	}).First(&ranking, id).Error
	return &ranking, err
}

func (r *rankingRepository) GetByPeriod(source models.RankingSource, rankingType models.RankingType, periodKey string) (*models.Ranking, error) {
	var ranking models.Ranking
	err := r.db.Where("source = ? AND type = ? AND period_key = ?", source, rankingType, periodKey).
		First(&ranking).Error
	return &ranking, err
}

var rankingSortColumns = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"period_key":    true,
	"records_count": true,
}

func (r *rankingRepository) Search(params models.RankingSearchParams) ([]models.Ranking, int64, error) {
	var rankings []models.Ranking
	var total int64

	query := r.db.Model(&models.Ranking{})

	if params.Query != "" {
		query = query.Where("name LIKE ?", "%"+params.Query+"%")
	}
	if params.Source != "" {
		query = query.Where("source = ?", params.Source)
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.PeriodKey != "" {
		query = query.Where("period_key = ?", params.PeriodKey)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !rankingSortColumns[sortBy] {
		sortBy = "created_at"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder))

	err := query.Offset(params.Offset()).Limit(params.Limit).Find(&rankings).Error
	return rankings, total, err
}

// Delete deactivates the ranking. The row keeps its (source, type, period_key)
// slot so a later aggregator run for the same period finds it again instead of
// tripping over an invisible unique-index entry.
func (r *rankingRepository) Delete(id uint) error {
	return r.db.Model(&models.Ranking{}).Where("id = ?", id).Update("status", false).Error
}

// UpsertForPeriod inserts the ranking or, when one already exists for the
// same (source, type, period_key), touches updated_at and reactivates it.
// Existing entries are never re-ranked here. The row for the period is
// returned either way.
func (r *rankingRepository) UpsertForPeriod(ranking *models.Ranking) (*models.Ranking, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source"}, {Name: "type"}, {Name: "period_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"status":     true,
		}),
	}).Create(ranking).Error
	if err != nil {
		return nil, err
	}

	// The conflict path does not report the existing primary key, so always
	// read the period row back.
	return r.GetByPeriod(ranking.Source, ranking.Type, ranking.PeriodKey)
}

// CreateRecords inserts ranking records, silently skipping rows that collide
// on (ranking_id, entity_id, entity_type).
func (r *rankingRepository) CreateRecords(records []models.RankingRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&records).Error
}

func (r *rankingRepository) CountRecords(rankingID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.RankingRecord{}).Where("ranking_id = ?", rankingID).Count(&count).Error
	return count, err
}

func (r *rankingRepository) GetRecords(rankingID uint) ([]models.RankingRecord, error) {
	var records []models.RankingRecord
	err := r.db.Where("ranking_id = ?", rankingID).Order("rank asc").Find(&records).Error
	return records, err
}
