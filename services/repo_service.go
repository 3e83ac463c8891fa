package services

import (
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type RepoService interface {
	CreateRepo(req models.CreateRepoRequest) (*models.Repo, error)
	GetRepo(id uint) (*models.Repo, error)
	GetAllRepos() ([]models.Repo, error)
	DeleteRepo(id uint) error
}

type repoService struct {
	repoRepo repositories.RepoRepository
	appRepo  repositories.AppRepository
}

func NewRepoService(repoRepo repositories.RepoRepository, appRepo repositories.AppRepository) RepoService {
	return &repoService{repoRepo: repoRepo, appRepo: appRepo}
}

// CreateRepo registers a repository for the snapshot collector to track.
// Counters start at zero and fill in on the next collection pass.
func (s *repoService) CreateRepo(req models.CreateRepoRequest) (*models.Repo, error) {
	if req.AppID != nil {
		if _, err := s.appRepo.GetByID(*req.AppID); err != nil {
			return nil, translateDBError(err, "app not found", "")
		}
	}

	repo := &models.Repo{
		AppID:    req.AppID,
		FullName: req.FullName,
	}
	if err := s.repoRepo.Create(repo); err != nil {
		return nil, translateDBError(err, "repo not found", "this repository is already tracked")
	}
	return repo, nil
}

func (s *repoService) GetRepo(id uint) (*models.Repo, error) {
	repo, err := s.repoRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "repo not found", "")
	}
	return repo, nil
}

func (s *repoService) GetAllRepos() ([]models.Repo, error) {
	return s.repoRepo.GetAll()
}

func (s *repoService) DeleteRepo(id uint) error {
	if _, err := s.repoRepo.GetByID(id); err != nil {
		return translateDBError(err, "repo not found", "")
	}
	return s.repoRepo.Delete(id)
}
