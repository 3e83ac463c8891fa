package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type ClaimService interface {
	CreateClaim(req models.CreateClaimRequest, userID uint) (*models.Claim, error)
	GetClaim(id uint) (*models.Claim, error)
	SearchClaims(params models.ClaimSearchParams) ([]models.Claim, int64, error)
	ReviewClaim(id uint, req models.ReviewRequest, reviewerID uint) (*models.Claim, error)
	DeleteClaim(id uint) error
}

type claimService struct {
	claimRepo repositories.ClaimRepository
	appRepo   repositories.AppRepository
}

func NewClaimService(claimRepo repositories.ClaimRepository, appRepo repositories.AppRepository) ClaimService {
	return &claimService{claimRepo: claimRepo, appRepo: appRepo}
}

func (s *claimService) CreateClaim(req models.CreateClaimRequest, userID uint) (*models.Claim, error) {
	if _, err := s.appRepo.GetByID(req.AppID); err != nil {
		return nil, translateDBError(err, "app not found", "")
	}

	// One pending claim per (app, user) at a time.
	if _, err := s.claimRepo.GetPendingByAppAndUser(req.AppID, userID); err == nil {
		return nil, models.ErrorConflict{Message: "a pending claim already exists for this app"}
	} else if !isNotFound(err) {
		return nil, err
	}

	claim := &models.Claim{
		AppID:    req.AppID,
		UserID:   userID,
		ProofURL: req.ProofURL,
		Token:    uuid.NewString(),
		Status:   models.ClaimStatusPending,
	}
	if err := s.claimRepo.Create(claim); err != nil {
		return nil, translateDBError(err, "claim not found", "claim already exists")
	}
	return claim, nil
}

func (s *claimService) GetClaim(id uint) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "claim not found", "")
	}
	return claim, nil
}

func (s *claimService) SearchClaims(params models.ClaimSearchParams) ([]models.Claim, int64, error) {
	params.Normalize()
	return s.claimRepo.Search(params)
}

func (s *claimService) ReviewClaim(id uint, req models.ReviewRequest, reviewerID uint) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "claim not found", "")
	}
	if claim.Status != models.ClaimStatusPending {
		return nil, models.ErrorConflict{Message: "claim has already been reviewed"}
	}

	if req.Approve {
		claim.Status = models.ClaimStatusApproved
	} else {
		claim.Status = models.ClaimStatusRejected
	}
	now := time.Now()
	claim.ReviewNote = req.Reason
	claim.ReviewedBy = &reviewerID
	claim.ReviewedAt = &now

	if err := s.claimRepo.Update(claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *claimService) DeleteClaim(id uint) error {
	if _, err := s.claimRepo.GetByID(id); err != nil {
		return translateDBError(err, "claim not found", "")
	}
	return s.claimRepo.Delete(id)
}
