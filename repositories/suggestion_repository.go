package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type SuggestionRepository interface {
	Create(suggestion *models.Suggestion) error
	Update(suggestion *models.Suggestion) error
	GetByID(id uint) (*models.Suggestion, error)
	Search(params models.SuggestionSearchParams) ([]models.Suggestion, int64, error)
	Delete(id uint) error
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(suggestion *models.Suggestion) error {
	return r.db.Create(suggestion).Error
}

func (r *suggestionRepository) Update(suggestion *models.Suggestion) error {
	return r.db.Save(suggestion).Error
}

func (r *suggestionRepository) GetByID(id uint) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.db.First(&suggestion, id).Error
	return &suggestion, err
}

func (r *suggestionRepository) Search(params models.SuggestionSearchParams) ([]models.Suggestion, int64, error) {
	var suggestions []models.Suggestion
	var total int64

	query := r.db.Model(&models.Suggestion{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}
	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if sortBy != "created_at" && sortBy != "updated_at" {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&suggestions).Error
	return suggestions, total, err
}

func (r *suggestionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Suggestion{}, id).Error
}
