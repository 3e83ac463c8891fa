package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type RssRepository interface {
	Create(item *models.RssItem) error
	Update(item *models.RssItem) error
	GetByID(id uint) (*models.RssItem, error)
	Search(params models.SearchParams) ([]models.RssItem, int64, error)
	Delete(id uint) error
}

type rssRepository struct {
	db *gorm.DB
}

func NewRssRepository(db *gorm.DB) RssRepository {
	return &rssRepository{db: db}
}

func (r *rssRepository) Create(item *models.RssItem) error {
	return r.db.Create(item).Error
}

func (r *rssRepository) Update(item *models.RssItem) error {
	return r.db.Save(item).Error
}

func (r *rssRepository) GetByID(id uint) (*models.RssItem, error) {
	var item models.RssItem
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *rssRepository) Search(params models.SearchParams) ([]models.RssItem, int64, error) {
	var items []models.RssItem
	var total int64

	query := r.db.Model(&models.RssItem{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("title LIKE ? OR summary LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if sortBy != "published_at" && sortBy != "created_at" {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *rssRepository) Delete(id uint) error {
	return r.db.Delete(&models.RssItem{}, id).Error
}
