package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	Update(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	Search(params models.SearchParams) ([]models.Category, int64, error)
	GetAll() ([]models.Category, error)
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return &category, err
}

var categorySortColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"sort":       true,
}

func (r *categoryRepository) Search(params models.SearchParams) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	query := r.db.Model(&models.Category{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !categorySortColumns[sortBy] {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&categories).Error
	return categories, total, err
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("status = ?", true).Order("sort asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}
