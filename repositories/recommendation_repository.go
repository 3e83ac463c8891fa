package repositories

import (
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type RecommendationRepository interface {
	Create(rec *models.Recommendation) error
	Update(rec *models.Recommendation) error
	GetByID(id uint) (*models.Recommendation, error)
	GetByPosition(position string) ([]models.Recommendation, error)
	GetAll() ([]models.Recommendation, error)
	Delete(id uint) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(rec *models.Recommendation) error {
	return r.db.Create(rec).Error
}

func (r *recommendationRepository) Update(rec *models.Recommendation) error {
	return r.db.Save(rec).Error
}

func (r *recommendationRepository) GetByID(id uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := r.db.Preload("App").First(&rec, id).Error
	return &rec, err
}

func (r *recommendationRepository) GetByPosition(position string) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.Preload("App").
		Where("position = ? AND status = ?", position, true).
		Order("sort asc").
		Find(&recs).Error
	return recs, err
}

func (r *recommendationRepository) GetAll() ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.Preload("App").Order("position asc, sort asc").Find(&recs).Error
	return recs, err
}

func (r *recommendationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Recommendation{}, id).Error
}
