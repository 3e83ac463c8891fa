package services

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type RankingServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *rankingService
}

func (suite *RankingServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())

	log := logrus.New()
	log.SetOutput(io.Discard)

	suite.service = &rankingService{
		db:          suite.db,
		rankingRepo: repositories.NewRankingRepository(suite.db),
		appRepo:     repositories.NewAppRepository(suite.db),
		log:         log,
		now: func() time.Time {
			return time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
		},
	}
}

func (suite *RankingServiceTestSuite) TestCreateGithubSubmissionRankCreatesAppsAndRecords() {
	submissions := []models.RankSubmission{
		{Name: "filesystem", Github: "https://github.com/example/filesystem", Stars: 950},
		{Name: "fetch", Github: "https://github.com/example/fetch", Stars: 420},
	}

	apps, err := suite.service.CreateGithubSubmissionRank(submissions, models.RankingTypeWeekly)
	suite.Require().NoError(err)
	suite.Require().Len(apps, 2)

	for _, app := range apps {
		suite.Equal(models.AppStatusApproved, app.Status)
		suite.Equal(models.PublishStatusOnline, app.PublishStatus)
		suite.Equal(models.AppSourceAutomatic, app.Source)
		suite.Equal(models.AppTypeServer, app.Type)
	}

	var ranking models.Ranking
	suite.Require().NoError(suite.db.Where(
		"source = ? AND type = ? AND period_key = ?",
		models.RankingSourceGithub, models.RankingTypeWeekly, "2024-W18",
	).First(&ranking).Error)
	suite.Equal(2, ranking.RecordsCount)

	var records []models.RankingRecord
	suite.Require().NoError(suite.db.Where("ranking_id = ?", ranking.ID).Order("rank asc").Find(&records).Error)
	suite.Require().Len(records, 2)

	suite.Equal(1, records[0].Rank)
	suite.Equal("filesystem", records[0].EntityName)
	suite.Equal(950, records[0].Score)
	suite.Equal(2, records[1].Rank)
	suite.Equal("fetch", records[1].EntityName)
}

func (suite *RankingServiceTestSuite) TestCreateGithubSubmissionRankSkipsEmptyGithub() {
	submissions := []models.RankSubmission{
		{Name: "no-repo", Stars: 10},
		{Name: "with-repo", Github: "https://github.com/example/with-repo", Stars: 20},
	}

	apps, err := suite.service.CreateGithubSubmissionRank(submissions, models.RankingTypeDaily)
	suite.Require().NoError(err)
	suite.Require().Len(apps, 1)
	suite.Equal("with-repo", apps[0].Name)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.App{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *RankingServiceTestSuite) TestCreateSubmissionRankReusesExistingApp() {
	existing := &models.App{
		Name:   "filesystem",
		Type:   models.AppTypeServer,
		Status: models.AppStatusApproved,
	}
	suite.Require().NoError(suite.db.Create(existing).Error)

	apps, err := suite.service.CreateGithubSubmissionRank([]models.RankSubmission{
		{Name: "filesystem", Github: "https://github.com/example/filesystem", Stars: 100},
	}, models.RankingTypeDaily)
	suite.Require().NoError(err)
	suite.Require().Len(apps, 1)
	suite.Equal(existing.ID, apps[0].ID)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.App{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *RankingServiceTestSuite) TestCreateSubmissionRankIdempotentForPeriod() {
	submissions := []models.RankSubmission{
		{Name: "filesystem", Github: "https://github.com/example/filesystem", Stars: 950},
		{Name: "fetch", Github: "https://github.com/example/fetch", Stars: 420},
	}

	_, err := suite.service.CreateGithubSubmissionRank(submissions, models.RankingTypeWeekly)
	suite.Require().NoError(err)
	_, err = suite.service.CreateGithubSubmissionRank(submissions, models.RankingTypeWeekly)
	suite.Require().NoError(err)

	var rankingCount int64
	suite.Require().NoError(suite.db.Model(&models.Ranking{}).Count(&rankingCount).Error)
	suite.EqualValues(1, rankingCount)

	var recordCount int64
	suite.Require().NoError(suite.db.Model(&models.RankingRecord{}).Count(&recordCount).Error)
	suite.EqualValues(2, recordCount)
}

func (suite *RankingServiceTestSuite) TestCreateRankingConflictForSamePeriod() {
	req := models.CreateRankingRequest{
		Name:      "weekly github ranking",
		Source:    models.RankingSourceGithub,
		Type:      models.RankingTypeWeekly,
		PeriodKey: "2024-W18",
	}

	_, err := suite.service.CreateRanking(req)
	suite.Require().NoError(err)

	_, err = suite.service.CreateRanking(req)
	suite.Require().Error(err)
	suite.IsType(models.ErrorConflict{}, err)
}

func (suite *RankingServiceTestSuite) TestDeleteRankingNotFound() {
	err := suite.service.DeleteRanking(9999)
	suite.Require().Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *RankingServiceTestSuite) TestDeleteRankingThenReaggregateSamePeriod() {
	submissions := []models.RankSubmission{
		{Name: "filesystem", Github: "https://github.com/example/filesystem", Stars: 950},
	}

	_, err := suite.service.CreateGithubSubmissionRank(submissions, models.RankingTypeDaily)
	suite.Require().NoError(err)

	var ranking models.Ranking
	suite.Require().NoError(suite.db.First(&ranking).Error)
	suite.Require().NoError(suite.service.DeleteRanking(ranking.ID))

	suite.Require().NoError(suite.db.First(&ranking, ranking.ID).Error)
	suite.False(ranking.Status)

	// The period slot must stay reclaimable after a delete.
	_, err = suite.service.CreateGithubSubmissionRank(submissions, models.RankingTypeDaily)
	suite.Require().NoError(err)

	var rankingCount int64
	suite.Require().NoError(suite.db.Model(&models.Ranking{}).Count(&rankingCount).Error)
	suite.EqualValues(1, rankingCount)

	suite.Require().NoError(suite.db.First(&ranking, ranking.ID).Error)
	suite.True(ranking.Status)
	suite.Equal(1, ranking.RecordsCount)
}

func (suite *RankingServiceTestSuite) TestGetRankingRecordsOrderedByRank() {
	_, err := suite.service.CreateGithubSubmissionRank([]models.RankSubmission{
		{Name: "third", Github: "https://github.com/example/third", Stars: 1},
		{Name: "first", Github: "https://github.com/example/first", Stars: 3},
		{Name: "second", Github: "https://github.com/example/second", Stars: 2},
	}, models.RankingTypeDaily)
	suite.Require().NoError(err)

	var ranking models.Ranking
	suite.Require().NoError(suite.db.First(&ranking).Error)

	records, err := suite.service.GetRankingRecords(ranking.ID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)

	// Submission order wins over score.
	suite.Equal("third", records[0].EntityName)
	suite.Equal("first", records[1].EntityName)
	suite.Equal("second", records[2].EntityName)
	for i, record := range records {
		suite.Equal(i+1, record.Rank)
	}
}

func TestRankingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RankingServiceTestSuite))
}
