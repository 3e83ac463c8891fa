package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type RankingService interface {
	CreateGithubSubmissionRank(submissions []models.RankSubmission, rankingType models.RankingType) ([]models.App, error)
	CreateSubmissionRank(source models.RankingSource, submissions []models.RankSubmission, rankingType models.RankingType) ([]models.App, error)
	CreateRanking(req models.CreateRankingRequest) (*models.Ranking, error)
	GetRanking(id uint) (*models.Ranking, error)
	SearchRankings(params models.RankingSearchParams) ([]models.Ranking, int64, error)
	DeleteRanking(id uint) error
	GetRankingRecords(rankingID uint) ([]models.RankingRecord, error)
}

type rankingService struct {
	db          *gorm.DB
	rankingRepo repositories.RankingRepository
	appRepo     repositories.AppRepository
	log         *logrus.Logger
	now         func() time.Time
}

func NewRankingService(db *gorm.DB, rankingRepo repositories.RankingRepository, appRepo repositories.AppRepository, log *logrus.Logger) RankingService {
	return &rankingService{
		db:          db,
		rankingRepo: rankingRepo,
		appRepo:     appRepo,
		log:         log,
		now:         time.Now,
	}
}

// CreateGithubSubmissionRank builds the period ranking for GitHub-sourced
// submissions. Submissions without a github URL are skipped; the rest are
// resolved to existing apps (by name+type, website or github URL) or created
// with approved/online/automatic defaults. Records get their rank from the
// submission order, not from a re-sort by score. The whole run is one
// transaction: app creation and ranking writes commit or roll back together.
func (s *rankingService) CreateGithubSubmissionRank(submissions []models.RankSubmission, rankingType models.RankingType) ([]models.App, error) {
	return s.CreateSubmissionRank(models.RankingSourceGithub, submissions, rankingType)
}

func (s *rankingService) CreateSubmissionRank(source models.RankingSource, submissions []models.RankSubmission, rankingType models.RankingType) ([]models.App, error) {
	periodKey, err := FormatPeriodKey(rankingType, s.now())
	if err != nil {
		return nil, models.ErrorBadRequest{Message: err.Error()}
	}

	var apps []models.App

	err = s.db.Transaction(func(tx *gorm.DB) error {
		appRepo := s.appRepo.WithTx(tx)
		rankingRepo := s.rankingRepo.WithTx(tx)

		for _, sub := range submissions {
			if source == models.RankingSourceGithub && sub.Github == "" {
				continue
			}
			app, err := s.resolveApp(appRepo, sub)
			if err != nil {
				return err
			}
			apps = append(apps, *app)
		}

		ranking, err := rankingRepo.UpsertForPeriod(&models.Ranking{
			Name:      fmt.Sprintf("%s %s ranking %s", source, rankingType, periodKey),
			Source:    source,
			Type:      rankingType,
			PeriodKey: periodKey,
			Status:    true,
		})
		if err != nil {
			return err
		}

		records := make([]models.RankingRecord, 0, len(apps))
		for i, app := range apps {
			records = append(records, models.RankingRecord{
				RankingID:  ranking.ID,
				EntityID:   app.ID,
				EntityName: app.Name,
				EntityType: models.EntityTypeApps,
				Score:      app.Stars,
				Rank:       i + 1,
			})
		}
		if err := rankingRepo.CreateRecords(records); err != nil {
			return err
		}

		count, err := rankingRepo.CountRecords(ranking.ID)
		if err != nil {
			return err
		}
		ranking.RecordsCount = int(count)
		return rankingRepo.Update(ranking)
	})
	if err != nil {
		return nil, translateDBError(err, "ranking not found", "ranking record already exists for this period")
	}

	s.log.WithFields(logrus.Fields{
		"source":     source,
		"type":       rankingType,
		"period_key": periodKey,
		"apps":       len(apps),
	}).Info("submission ranking created")

	return apps, nil
}

// resolveApp reuses an existing listing when the submission matches one by
// (name, type), website or github URL; otherwise it inserts a new app row.
func (s *rankingService) resolveApp(appRepo repositories.AppRepository, sub models.RankSubmission) (*models.App, error) {
	appType := sub.Type
	if appType == "" {
		appType = models.AppTypeServer
	}

	app, err := appRepo.FindByNameAndType(sub.Name, appType)
	if err == nil {
		return app, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	if sub.Website != "" {
		app, err = appRepo.FindByWebsite(sub.Website)
		if err == nil {
			return app, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}

	if sub.Github != "" {
		app, err = appRepo.FindByGithub(sub.Github)
		if err == nil {
			return app, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}

	created := &models.App{
		Name:          sub.Name,
		Type:          appType,
		Description:   sub.Description,
		Website:       sub.Website,
		Github:        sub.Github,
		Stars:         sub.Stars,
		Status:        models.AppStatusApproved,
		PublishStatus: models.PublishStatusOnline,
		Source:        models.AppSourceAutomatic,
	}
	if err := appRepo.Create(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *rankingService) CreateRanking(req models.CreateRankingRequest) (*models.Ranking, error) {
	periodKey := req.PeriodKey
	if periodKey == "" {
		key, err := FormatPeriodKey(req.Type, s.now())
		if err != nil {
			return nil, models.ErrorBadRequest{Message: err.Error()}
		}
		periodKey = key
	}

	ranking := &models.Ranking{
		Name:      req.Name,
		Source:    req.Source,
		Type:      req.Type,
		PeriodKey: periodKey,
		Status:    true,
	}
	if err := s.rankingRepo.Create(ranking); err != nil {
		return nil, translateDBError(err, "ranking not found", "a ranking already exists for this period")
	}
	return ranking, nil
}

func (s *rankingService) GetRanking(id uint) (*models.Ranking, error) {
	ranking, err := s.rankingRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "ranking not found", "")
	}
	return ranking, nil
}

func (s *rankingService) SearchRankings(params models.RankingSearchParams) ([]models.Ranking, int64, error) {
	params.Normalize()
	return s.rankingRepo.Search(params)
}

// DeleteRanking deactivates the ranking. The row is never removed, so the
// period can be re-aggregated later and the upsert will reactivate it.
func (s *rankingService) DeleteRanking(id uint) error {
	if _, err := s.rankingRepo.GetByID(id); err != nil {
		return translateDBError(err, "ranking not found", "")
	}
	return s.rankingRepo.Delete(id)
}

func (s *rankingService) GetRankingRecords(rankingID uint) ([]models.RankingRecord, error) {
	if _, err := s.rankingRepo.GetByID(rankingID); err != nil {
		return nil, translateDBError(err, "ranking not found", "")
	}
	return s.rankingRepo.GetRecords(rankingID)
}
