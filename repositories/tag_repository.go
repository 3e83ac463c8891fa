package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	Update(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	Search(params models.SearchParams) ([]models.Tag, int64, error)
	GetAll() ([]models.Tag, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) TagRepository
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) WithTx(tx *gorm.DB) TagRepository {
	return &tagRepository{db: tx}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

var tagSortColumns = map[string]bool{
	"created_at":  true,
	"name":        true,
	"usage_count": true,
}

func (r *tagRepository) Search(params models.SearchParams) ([]models.Tag, int64, error) {
	var tags []models.Tag
	var total int64

	query := r.db.Model(&models.Tag{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !tagSortColumns[sortBy] {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&tags).Error
	return tags, total, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("usage_count desc").Find(&tags).Error
	return tags, err
}

// Delete is a soft delete; tag rows stay behind the gorm.DeletedAt flag.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tag{}, id).Error
}
