package services

import (
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type RssService interface {
	CreateItem(item *models.RssItem) (*models.RssItem, error)
	GetItem(id uint) (*models.RssItem, error)
	SearchItems(params models.SearchParams) ([]models.RssItem, int64, error)
	DeleteItem(id uint) error
}

type rssService struct {
	rssRepo repositories.RssRepository
}

func NewRssService(rssRepo repositories.RssRepository) RssService {
	return &rssService{rssRepo: rssRepo}
}

func (s *rssService) CreateItem(item *models.RssItem) (*models.RssItem, error) {
	if err := s.rssRepo.Create(item); err != nil {
		return nil, translateDBError(err, "rss item not found", "an item with this link already exists")
	}
	return item, nil
}

func (s *rssService) GetItem(id uint) (*models.RssItem, error) {
	item, err := s.rssRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "rss item not found", "")
	}
	return item, nil
}

func (s *rssService) SearchItems(params models.SearchParams) ([]models.RssItem, int64, error) {
	params.Normalize()
	return s.rssRepo.Search(params)
}

func (s *rssService) DeleteItem(id uint) error {
	if _, err := s.rssRepo.GetByID(id); err != nil {
		return translateDBError(err, "rss item not found", "")
	}
	return s.rssRepo.Delete(id)
}
