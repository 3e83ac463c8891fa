package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type AppRepository interface {
	Create(app *models.App) error
	Update(app *models.App) error
	GetByID(id uint) (*models.App, error)
	Search(params models.AppSearchParams) ([]models.App, int64, error)
	Delete(id uint) error
	FindByNameAndType(name string, appType models.AppType) (*models.App, error)
	FindByWebsite(website string) (*models.App, error)
	FindByGithub(github string) (*models.App, error)
	WithTx(tx *gorm.DB) AppRepository
}

type appRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) AppRepository {
	return &appRepository{db: db}
}

// WithTx rebinds the repository to a running transaction so the ranking
// aggregator can resolve and create apps atomically with its own writes.
func (r *appRepository) WithTx(tx *gorm.DB) AppRepository {
	return &appRepository{db: tx}
}

func (r *appRepository) Create(app *models.App) error {
	return r.db.Create(app).Error
}

func (r *appRepository) Update(app *models.App) error {
	return r.db.Save(app).Error
}

func (r *appRepository) GetByID(id uint) (*models.App, error) {
	var app models.App
	err := r.db.Preload("Category").Preload("Tags").First(&app, id).Error
	return &app, err
}

var appSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"stars":      true,
}

func (r *appRepository) Search(params models.AppSearchParams) ([]models.App, int64, error) {
	var apps []models.App
	var total int64

	query := r.db.Model(&models.App{}).Preload("Category").Preload("Tags")

	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.PublishStatus != "" {
		query = query.Where("publish_status = ?", params.PublishStatus)
	}
	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}
	if params.TagID > 0 {
		query = query.Joins("JOIN app_tags ON app_tags.app_id = apps.id").
			Where("app_tags.tag_id = ?", params.TagID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !appSortColumns[sortBy] {
		sortBy = "created_at"
	}
	query = query.Order(fmt.Sprintf("apps.%s %s", sortBy, params.SortOrder))

	err := query.Offset(params.Offset()).Limit(params.Limit).Find(&apps).Error
	return apps, total, err
}

func (r *appRepository) Delete(id uint) error {
	return r.db.Delete(&models.App{}, id).Error
}

func (r *appRepository) FindByNameAndType(name string, appType models.AppType) (*models.App, error) {
	var app models.App
	err := r.db.Where("name = ? AND type = ?", name, appType).First(&app).Error
	return &app, err
}

func (r *appRepository) FindByWebsite(website string) (*models.App, error) {
	var app models.App
	err := r.db.Where("website = ?", website).First(&app).Error
	return &app, err
}

func (r *appRepository) FindByGithub(github string) (*models.App, error) {
	var app models.App
	err := r.db.Where("github = ?", github).First(&app).Error
	return &app, err
}
