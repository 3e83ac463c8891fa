package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type TrendServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *trendService
	repoID  uint
}

func (suite *TrendServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())

	repo := &models.Repo{FullName: "example/filesystem", Stars: 150}
	suite.Require().NoError(suite.db.Create(repo).Error)
	suite.repoID = repo.ID

	suite.service = &trendService{
		snapshotRepo: repositories.NewSnapshotRepository(suite.db),
		now: func() time.Time {
			return time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
		},
	}
}

func (suite *TrendServiceTestSuite) seedDaily(year, month, day, stars int) {
	suite.Require().NoError(suite.db.Create(&models.Snapshot{
		RepoID: suite.repoID, Year: year, Month: month, Day: day, Stars: stars,
	}).Error)
}

func (suite *TrendServiceTestSuite) TestZeroRepoIDReturnsZeroTrends() {
	trends, err := suite.service.GetProjectTrends(0)
	suite.Require().NoError(err)
	suite.Equal(models.ProjectTrends{}, trends)
}

func (suite *TrendServiceTestSuite) TestNoSnapshotsReturnsZeroTrends() {
	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(models.ProjectTrends{}, trends)
}

func (suite *TrendServiceTestSuite) TestDailyTrendFromTwoMostRecentSnapshots() {
	suite.seedDaily(2024, 5, 1, 100)
	suite.seedDaily(2024, 5, 2, 120)
	suite.seedDaily(2024, 5, 3, 150)

	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(30, trends.Daily)
}

func (suite *TrendServiceTestSuite) TestWeeklyTrendFromTwoMostRecentSnapshots() {
	suite.Require().NoError(suite.db.Create(&models.SnapshotWeekly{
		RepoID: suite.repoID, Year: 2024, Week: 17, Stars: 100,
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.SnapshotWeekly{
		RepoID: suite.repoID, Year: 2024, Week: 18, Stars: 140,
	}).Error)

	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(40, trends.Weekly)
}

func (suite *TrendServiceTestSuite) TestMonthlyTrendAgainstLastCalendarMonth() {
	suite.seedDaily(2024, 5, 2, 120)
	suite.Require().NoError(suite.db.Create(&models.SnapshotMonthly{
		RepoID: suite.repoID, Year: 2024, Month: 4, Stars: 90,
	}).Error)

	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(30, trends.Monthly)
}

func (suite *TrendServiceTestSuite) TestMonthlyTrendZeroWhenAnchorMissing() {
	suite.seedDaily(2024, 5, 2, 120)

	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(0, trends.Monthly)
}

func (suite *TrendServiceTestSuite) TestYearlyTrendAgainstDecemberOfPreviousYear() {
	suite.seedDaily(2024, 5, 3, 150)
	suite.Require().NoError(suite.db.Create(&models.SnapshotMonthly{
		RepoID: suite.repoID, Year: 2023, Month: 12, Stars: 50,
	}).Error)

	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(100, trends.Yearly)
}

func (suite *TrendServiceTestSuite) TestTrendsCanBeNegative() {
	suite.seedDaily(2024, 5, 2, 150)
	suite.seedDaily(2024, 5, 3, 120)

	trends, err := suite.service.GetProjectTrends(suite.repoID)
	suite.Require().NoError(err)
	suite.Equal(-30, trends.Daily)
}

func TestTrendServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrendServiceTestSuite))
}
