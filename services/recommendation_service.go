package services

import (
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type RecommendationService interface {
	CreateRecommendation(rec *models.Recommendation) (*models.Recommendation, error)
	GetRecommendation(id uint) (*models.Recommendation, error)
	GetByPosition(position string) ([]models.Recommendation, error)
	GetAllRecommendations() ([]models.Recommendation, error)
	DeleteRecommendation(id uint) error
}

type recommendationService struct {
	recommendationRepo repositories.RecommendationRepository
	appRepo            repositories.AppRepository
}

func NewRecommendationService(recommendationRepo repositories.RecommendationRepository, appRepo repositories.AppRepository) RecommendationService {
	return &recommendationService{recommendationRepo: recommendationRepo, appRepo: appRepo}
}

func (s *recommendationService) CreateRecommendation(rec *models.Recommendation) (*models.Recommendation, error) {
	if _, err := s.appRepo.GetByID(rec.AppID); err != nil {
		return nil, translateDBError(err, "app not found", "")
	}
	if err := s.recommendationRepo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recommendationService) GetRecommendation(id uint) (*models.Recommendation, error) {
	rec, err := s.recommendationRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "recommendation not found", "")
	}
	return rec, nil
}

func (s *recommendationService) GetByPosition(position string) ([]models.Recommendation, error) {
	return s.recommendationRepo.GetByPosition(position)
}

func (s *recommendationService) GetAllRecommendations() ([]models.Recommendation, error) {
	return s.recommendationRepo.GetAll()
}

func (s *recommendationService) DeleteRecommendation(id uint) error {
	if _, err := s.recommendationRepo.GetByID(id); err != nil {
		return translateDBError(err, "recommendation not found", "")
	}
	return s.recommendationRepo.Delete(id)
}
