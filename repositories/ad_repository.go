package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type AdRepository interface {
	Create(ad *models.Ad) error
	Update(ad *models.Ad) error
	GetByID(id uint) (*models.Ad, error)
	Search(params models.AdSearchParams) ([]models.Ad, int64, error)
	Delete(id uint) error
}

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ad *models.Ad) error {
	return r.db.Create(ad).Error
}

func (r *adRepository) Update(ad *models.Ad) error {
	return r.db.Save(ad).Error
}

func (r *adRepository) GetByID(id uint) (*models.Ad, error) {
	var ad models.Ad
	err := r.db.First(&ad, id).Error
	return &ad, err
}

var adSortColumns = map[string]bool{
	"created_at": true,
	"starts_at":  true,
	"ends_at":    true,
	"price":      true,
}

func (r *adRepository) Search(params models.AdSearchParams) ([]models.Ad, int64, error) {
	var ads []models.Ad
	var total int64

	query := r.db.Model(&models.Ad{})
	if params.Query != "" {
		query = query.Where("title LIKE ?", "%"+params.Query+"%")
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !adSortColumns[sortBy] {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&ads).Error
	return ads, total, err
}

func (r *adRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ad{}, id).Error
}
