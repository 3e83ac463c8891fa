package services

import (
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	UpdateTag(id uint, req models.CreateTagRequest) (*models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	SearchTags(params models.SearchParams) ([]models.Tag, int64, error)
	GetAllTags() ([]models.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	tag := &models.Tag{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, translateDBError(err, "tag not found", "tag name or slug already exists")
	}
	return tag, nil
}

func (s *tagService) UpdateTag(id uint, req models.CreateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "tag not found", "")
	}

	tag.Name = req.Name
	tag.Slug = req.Slug
	tag.Description = req.Description

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, translateDBError(err, "tag not found", "tag name or slug already exists")
	}
	return tag, nil
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "tag not found", "")
	}
	return tag, nil
}

func (s *tagService) SearchTags(params models.SearchParams) ([]models.Tag, int64, error) {
	params.Normalize()
	return s.tagRepo.Search(params)
}

func (s *tagService) GetAllTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) DeleteTag(id uint) error {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		return translateDBError(err, "tag not found", "")
	}
	return s.tagRepo.Delete(id)
}
