package services

import (
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type AppService interface {
	CreateApp(req models.CreateAppRequest, source models.AppSource) (*models.App, error)
	UpdateApp(id uint, req models.UpdateAppRequest) (*models.App, error)
	GetApp(id uint, publicOnly bool) (*models.App, error)
	SearchApps(params models.AppSearchParams, publicOnly bool) ([]models.App, int64, error)
	DeleteApp(id uint) error
}

type appService struct {
	db      *gorm.DB
	appRepo repositories.AppRepository
	tagRepo repositories.TagRepository
}

func NewAppService(db *gorm.DB, appRepo repositories.AppRepository, tagRepo repositories.TagRepository) AppService {
	return &appService{db: db, appRepo: appRepo, tagRepo: tagRepo}
}

func (s *appService) CreateApp(req models.CreateAppRequest, source models.AppSource) (*models.App, error) {
	app := &models.App{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Website:     req.Website,
		Github:      req.Github,
		Icon:        req.Icon,
		CategoryID:  req.CategoryID,
		Source:      source,
	}
	// Admin-created listings go straight online.
	if source == models.AppSourceAdmin {
		app.Status = models.AppStatusApproved
		app.PublishStatus = models.PublishStatusOnline
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		appRepo := s.appRepo.WithTx(tx)
		tagRepo := s.tagRepo.WithTx(tx)

		tags, err := s.resolveTags(tagRepo, req.Tags)
		if err != nil {
			return err
		}
		app.Tags = tags
		return appRepo.Create(app)
	})
	if err != nil {
		return nil, translateDBError(err, "app not found", "an app with this name already exists")
	}
	return s.GetApp(app.ID, false)
}

func (s *appService) resolveTags(tagRepo repositories.TagRepository, names []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range names {
		tag, err := tagRepo.GetByName(name)
		if err == nil {
			tags = append(tags, *tag)
			continue
		}
		if !isNotFound(err) {
			return nil, err
		}
		created := &models.Tag{Name: name, Slug: name}
		if err := tagRepo.Create(created); err != nil {
			return nil, err
		}
		tags = append(tags, *created)
	}
	return tags, nil
}

func (s *appService) UpdateApp(id uint, req models.UpdateAppRequest) (*models.App, error) {
	app, err := s.appRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "app not found", "")
	}

	if req.Name != nil {
		app.Name = *req.Name
	}
	if req.Description != nil {
		app.Description = *req.Description
	}
	if req.Website != nil {
		app.Website = *req.Website
	}
	if req.Github != nil {
		app.Github = *req.Github
	}
	if req.Icon != nil {
		app.Icon = *req.Icon
	}
	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.PublishStatus != nil {
		app.PublishStatus = *req.PublishStatus
	}
	if req.CategoryID != nil {
		app.CategoryID = req.CategoryID
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, translateDBError(err, "app not found", "an app with this name already exists")
	}
	return app, nil
}

func (s *appService) GetApp(id uint, publicOnly bool) (*models.App, error) {
	app, err := s.appRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "app not found", "")
	}
	if publicOnly && (app.Status != models.AppStatusApproved || app.PublishStatus != models.PublishStatusOnline) {
		return nil, models.ErrorNotFound{Message: "app not found"}
	}
	return app, nil
}

func (s *appService) SearchApps(params models.AppSearchParams, publicOnly bool) ([]models.App, int64, error) {
	params.Normalize()
	if publicOnly {
		params.Status = models.AppStatusApproved
		params.PublishStatus = models.PublishStatusOnline
	}
	return s.appRepo.Search(params)
}

func (s *appService) DeleteApp(id uint) error {
	if _, err := s.appRepo.GetByID(id); err != nil {
		return translateDBError(err, "app not found", "")
	}
	return s.appRepo.Delete(id)
}
