package services

import (
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type SuggestionService interface {
	CreateSuggestion(req models.CreateSuggestionRequest, userID uint) (*models.Suggestion, error)
	GetSuggestion(id uint) (*models.Suggestion, error)
	SearchSuggestions(params models.SuggestionSearchParams) ([]models.Suggestion, int64, error)
	ReviewSuggestion(id uint, req models.ReviewRequest) (*models.Suggestion, error)
	DeleteSuggestion(id uint) error
}

type suggestionService struct {
	suggestionRepo repositories.SuggestionRepository
	appRepo        repositories.AppRepository
}

func NewSuggestionService(suggestionRepo repositories.SuggestionRepository, appRepo repositories.AppRepository) SuggestionService {
	return &suggestionService{suggestionRepo: suggestionRepo, appRepo: appRepo}
}

func (s *suggestionService) CreateSuggestion(req models.CreateSuggestionRequest, userID uint) (*models.Suggestion, error) {
	if req.AppID != nil {
		if _, err := s.appRepo.GetByID(*req.AppID); err != nil {
			return nil, translateDBError(err, "app not found", "")
		}
	}

	suggestionType := req.Type
	if suggestionType == "" {
		suggestionType = models.SuggestionTypeOther
	}

	suggestion := &models.Suggestion{
		AppID:   req.AppID,
		UserID:  userID,
		Type:    suggestionType,
		Title:   req.Title,
		Content: req.Content,
		Status:  models.SuggestionStatusPending,
	}
	if err := s.suggestionRepo.Create(suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *suggestionService) GetSuggestion(id uint) (*models.Suggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "suggestion not found", "")
	}
	return suggestion, nil
}

func (s *suggestionService) SearchSuggestions(params models.SuggestionSearchParams) ([]models.Suggestion, int64, error) {
	params.Normalize()
	return s.suggestionRepo.Search(params)
}

func (s *suggestionService) ReviewSuggestion(id uint, req models.ReviewRequest) (*models.Suggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "suggestion not found", "")
	}
	if suggestion.Status != models.SuggestionStatusPending {
		return nil, models.ErrorConflict{Message: "suggestion has already been reviewed"}
	}

	if req.Approve {
		suggestion.Status = models.SuggestionStatusAccepted
	} else {
		suggestion.Status = models.SuggestionStatusRejected
	}
	suggestion.ReviewNote = req.Reason

	if err := s.suggestionRepo.Update(suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *suggestionService) DeleteSuggestion(id uint) error {
	if _, err := s.suggestionRepo.GetByID(id); err != nil {
		return translateDBError(err, "suggestion not found", "")
	}
	return s.suggestionRepo.Delete(id)
}
