package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type ClaimRepository interface {
	Create(claim *models.Claim) error
	Update(claim *models.Claim) error
	GetByID(id uint) (*models.Claim, error)
	GetPendingByAppAndUser(appID, userID uint) (*models.Claim, error)
	Search(params models.ClaimSearchParams) ([]models.Claim, int64, error)
	Delete(id uint) error
}

type claimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Create(claim *models.Claim) error {
	return r.db.Create(claim).Error
}

func (r *claimRepository) Update(claim *models.Claim) error {
	return r.db.Save(claim).Error
}

func (r *claimRepository) GetByID(id uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.Preload("App").Preload("User").First(&claim, id).Error
	return &claim, err
}

func (r *claimRepository) GetPendingByAppAndUser(appID, userID uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.Where("app_id = ? AND user_id = ? AND status = ?", appID, userID, models.ClaimStatusPending).
		First(&claim).Error
	return &claim, err
}

var claimSortColumns = map[string]bool{
	"created_at":  true,
	"reviewed_at": true,
}

func (r *claimRepository) Search(params models.ClaimSearchParams) ([]models.Claim, int64, error) {
	var claims []models.Claim
	var total int64

	query := r.db.Model(&models.Claim{}).Preload("App")
	if params.AppID > 0 {
		query = query.Where("app_id = ?", params.AppID)
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
	if !claimSortColumns[sortBy] {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&claims).Error
	return claims, total, err
}

func (r *claimRepository) Delete(id uint) error {
	return r.db.Delete(&models.Claim{}, id).Error
}
