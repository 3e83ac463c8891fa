package services

import (
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	SearchCategories(params models.SearchParams) ([]models.Category, int64, error)
	GetActiveCategories() ([]models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Sort:        req.Sort,
		Status:      true,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, translateDBError(err, "category not found", "category name or slug already exists")
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "category not found", "")
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	category.Sort = req.Sort

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, translateDBError(err, "category not found", "category name or slug already exists")
	}
	return category, nil
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "category not found", "")
	}
	return category, nil
}

func (s *categoryService) SearchCategories(params models.SearchParams) ([]models.Category, int64, error) {
	params.Normalize()
	return s.categoryRepo.Search(params)
}

func (s *categoryService) GetActiveCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return translateDBError(err, "category not found", "")
	}
	return s.categoryRepo.Delete(id)
}
