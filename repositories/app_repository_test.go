package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
)

type AppRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo AppRepository
}

func (suite *AppRepositoryTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.repo = NewAppRepository(suite.db)
}

func (suite *AppRepositoryTestSuite) seedApps(n int) {
	for i := 1; i <= n; i++ {
		status := models.AppStatusApproved
		publish := models.PublishStatusOnline
		if i%5 == 0 {
			status = models.AppStatusPending
			publish = models.PublishStatusOffline
		}
		suite.Require().NoError(suite.repo.Create(&models.App{
			Name:          fmt.Sprintf("server-%02d", i),
			Type:          models.AppTypeServer,
			Description:   "mcp test listing",
			Status:        status,
			PublishStatus: publish,
			Stars:         i * 10,
		}))
	}
}

func (suite *AppRepositoryTestSuite) TestSearchPaginates() {
	suite.seedApps(25)

	params := models.AppSearchParams{
		SearchParams: models.SearchParams{Page: 2, Limit: 10, SortBy: "name", SortOrder: "asc"},
	}

	apps, total, err := suite.repo.Search(params)
	suite.Require().NoError(err)
	suite.EqualValues(25, total)
	suite.Require().Len(apps, 10)
	suite.Equal("server-11", apps[0].Name)
	suite.Equal(3, helper.TotalPages(total, params.Limit))
}

func (suite *AppRepositoryTestSuite) TestSearchLastPageIsShort() {
	suite.seedApps(25)

	params := models.AppSearchParams{
		SearchParams: models.SearchParams{Page: 3, Limit: 10, SortBy: "name", SortOrder: "asc"},
	}

	apps, total, err := suite.repo.Search(params)
	suite.Require().NoError(err)
	suite.EqualValues(25, total)
	suite.Len(apps, 5)
}

func (suite *AppRepositoryTestSuite) TestSearchFiltersByStatus() {
	suite.seedApps(25)

	params := models.AppSearchParams{
		SearchParams:  models.SearchParams{Page: 1, Limit: 100, SortOrder: "desc"},
		Status:        models.AppStatusApproved,
		PublishStatus: models.PublishStatusOnline,
	}

	apps, total, err := suite.repo.Search(params)
	suite.Require().NoError(err)
	suite.EqualValues(20, total)
	for _, app := range apps {
		suite.Equal(models.AppStatusApproved, app.Status)
		suite.Equal(models.PublishStatusOnline, app.PublishStatus)
	}
}

func (suite *AppRepositoryTestSuite) TestSearchByQueryMatchesNameAndDescription() {
	suite.seedApps(3)
	suite.Require().NoError(suite.repo.Create(&models.App{
		Name:        "weather",
		Type:        models.AppTypeServer,
		Description: "forecast lookups",
	}))

	params := models.AppSearchParams{
		SearchParams: models.SearchParams{Query: "forecast", Page: 1, Limit: 10, SortOrder: "desc"},
	}

	apps, total, err := suite.repo.Search(params)
	suite.Require().NoError(err)
	suite.EqualValues(1, total)
	suite.Require().Len(apps, 1)
	suite.Equal("weather", apps[0].Name)
}

func (suite *AppRepositoryTestSuite) TestSearchIgnoresUnknownSortColumn() {
	suite.seedApps(3)

	params := models.AppSearchParams{
		SearchParams: models.SearchParams{Page: 1, Limit: 10, SortBy: "drop table", SortOrder: "asc"},
	}

	_, _, err := suite.repo.Search(params)
	suite.Require().NoError(err)
}

func (suite *AppRepositoryTestSuite) TestFindByNameAndType() {
	suite.Require().NoError(suite.repo.Create(&models.App{
		Name: "filesystem",
		Type: models.AppTypeServer,
	}))
	suite.Require().NoError(suite.repo.Create(&models.App{
		Name: "filesystem",
		Type: models.AppTypeClient,
	}))

	app, err := suite.repo.FindByNameAndType("filesystem", models.AppTypeClient)
	suite.Require().NoError(err)
	suite.Equal(models.AppTypeClient, app.Type)

	_, err = suite.repo.FindByNameAndType("missing", models.AppTypeServer)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *AppRepositoryTestSuite) TestDuplicateNameAndTypeRejected() {
	suite.Require().NoError(suite.repo.Create(&models.App{
		Name: "filesystem",
		Type: models.AppTypeServer,
	}))

	err := suite.repo.Create(&models.App{
		Name: "filesystem",
		Type: models.AppTypeServer,
	})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func TestAppRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AppRepositoryTestSuite))
}
