package repositories

import (
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type RepoRepository interface {
	Create(repo *models.Repo) error
	Update(repo *models.Repo) error
	GetByID(id uint) (*models.Repo, error)
	GetByFullName(fullName string) (*models.Repo, error)
	GetAll() ([]models.Repo, error)
	Delete(id uint) error
}

type repoRepository struct {
	db *gorm.DB
}

func NewRepoRepository(db *gorm.DB) RepoRepository {
	return &repoRepository{db: db}
}

func (r *repoRepository) Create(repo *models.Repo) error {
	return r.db.Create(repo).Error
}

func (r *repoRepository) Update(repo *models.Repo) error {
	return r.db.Save(repo).Error
}

func (r *repoRepository) GetByID(id uint) (*models.Repo, error) {
	var repo models.Repo
	err := r.db.First(&repo, id).Error
	return &repo, err
}

func (r *repoRepository) GetByFullName(fullName string) (*models.Repo, error) {
	var repo models.Repo
	err := r.db.Where("full_name = ?", fullName).First(&repo).Error
	return &repo, err
}

func (r *repoRepository) GetAll() ([]models.Repo, error) {
	var repos []models.Repo
	err := r.db.Find(&repos).Error
	return repos, err
}

func (r *repoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Repo{}, id).Error
}
