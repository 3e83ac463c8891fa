package services

import (
	"time"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type AdService interface {
	CreateAd(req models.CreateAdRequest) (*models.Ad, error)
	UpdateAd(id uint, req models.CreateAdRequest) (*models.Ad, error)
	GetAd(id uint) (*models.Ad, error)
	SearchAds(params models.AdSearchParams) ([]models.Ad, int64, error)
	DeleteAd(id uint) error
}

type adService struct {
	adRepo repositories.AdRepository
}

func NewAdService(adRepo repositories.AdRepository) AdService {
	return &adService{adRepo: adRepo}
}

func (s *adService) CreateAd(req models.CreateAdRequest) (*models.Ad, error) {
	startsAt, endsAt, err := parseAdWindow(req)
	if err != nil {
		return nil, err
	}

	ad := &models.Ad{
		Title:     req.Title,
		Type:      req.Type,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Price:     req.Price,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Status:    models.AdStatusPending,
	}
	if err := s.adRepo.Create(ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func parseAdWindow(req models.CreateAdRequest) (time.Time, time.Time, error) {
	var startsAt, endsAt time.Time
	var err error
	if req.StartsAt != "" {
		startsAt, err = time.Parse("2006-01-02", req.StartsAt)
		if err != nil {
			return startsAt, endsAt, models.ErrorBadRequest{Message: "starts_at must be YYYY-MM-DD"}
		}
	}
	if req.EndsAt != "" {
		endsAt, err = time.Parse("2006-01-02", req.EndsAt)
		if err != nil {
			return startsAt, endsAt, models.ErrorBadRequest{Message: "ends_at must be YYYY-MM-DD"}
		}
	}
	if !startsAt.IsZero() && !endsAt.IsZero() && endsAt.Before(startsAt) {
		return startsAt, endsAt, models.ErrorBadRequest{Message: "ends_at must not precede starts_at"}
	}
	return startsAt, endsAt, nil
}

func (s *adService) UpdateAd(id uint, req models.CreateAdRequest) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "ad not found", "")
	}

	startsAt, endsAt, err := parseAdWindow(req)
	if err != nil {
		return nil, err
	}

	ad.Title = req.Title
	ad.Type = req.Type
	ad.ImageURL = req.ImageURL
	ad.TargetURL = req.TargetURL
	ad.Price = req.Price
	if !startsAt.IsZero() {
		ad.StartsAt = startsAt
	}
	if !endsAt.IsZero() {
		ad.EndsAt = endsAt
	}

	if err := s.adRepo.Update(ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *adService) GetAd(id uint) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "ad not found", "")
	}
	return ad, nil
}

func (s *adService) SearchAds(params models.AdSearchParams) ([]models.Ad, int64, error) {
	params.Normalize()
	return s.adRepo.Search(params)
}

func (s *adService) DeleteAd(id uint) error {
	if _, err := s.adRepo.GetByID(id); err != nil {
		return translateDBError(err, "ad not found", "")
	}
	return s.adRepo.Delete(id)
}
