package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type AppServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service AppService
}

func (suite *AppServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewAppService(
		suite.db,
		repositories.NewAppRepository(suite.db),
		repositories.NewTagRepository(suite.db),
	)
}

func (suite *AppServiceTestSuite) TestCreateAppResolvesTags() {
	suite.Require().NoError(suite.db.Create(&models.Tag{Name: "search", Slug: "search"}).Error)

	app, err := suite.service.CreateApp(models.CreateAppRequest{
		Name: "filesystem",
		Type: models.AppTypeServer,
		Tags: []string{"search", "storage"},
	}, models.AppSourceAdmin)
	suite.Require().NoError(err)
	suite.Require().Len(app.Tags, 2)

	// One tag reused, one created.
	var tagCount int64
	suite.Require().NoError(suite.db.Model(&models.Tag{}).Count(&tagCount).Error)
	suite.EqualValues(2, tagCount)
}

func (suite *AppServiceTestSuite) TestAdminCreatedAppGoesOnline() {
	app, err := suite.service.CreateApp(models.CreateAppRequest{
		Name: "fetch",
		Type: models.AppTypeServer,
	}, models.AppSourceAdmin)
	suite.Require().NoError(err)
	suite.Equal(models.AppStatusApproved, app.Status)
	suite.Equal(models.PublishStatusOnline, app.PublishStatus)
}

func (suite *AppServiceTestSuite) TestSubmittedAppStartsPending() {
	app, err := suite.service.CreateApp(models.CreateAppRequest{
		Name: "fetch",
		Type: models.AppTypeServer,
	}, models.AppSourceSubmission)
	suite.Require().NoError(err)
	suite.Equal(models.AppStatusPending, app.Status)
	suite.NotEqual(models.PublishStatusOnline, app.PublishStatus)
}

func (suite *AppServiceTestSuite) TestCreateDuplicateAppReturnsConflict() {
	req := models.CreateAppRequest{Name: "fetch", Type: models.AppTypeServer}

	_, err := suite.service.CreateApp(req, models.AppSourceAdmin)
	suite.Require().NoError(err)

	_, err = suite.service.CreateApp(req, models.AppSourceAdmin)
	suite.Require().Error(err)
	suite.IsType(models.ErrorConflict{}, err)
}

func (suite *AppServiceTestSuite) TestPublicGetHidesUnpublishedApp() {
	app, err := suite.service.CreateApp(models.CreateAppRequest{
		Name: "pending-app",
		Type: models.AppTypeServer,
	}, models.AppSourceSubmission)
	suite.Require().NoError(err)

	_, err = suite.service.GetApp(app.ID, true)
	suite.Require().Error(err)
	suite.IsType(models.ErrorNotFound{}, err)

	got, err := suite.service.GetApp(app.ID, false)
	suite.Require().NoError(err)
	suite.Equal(app.ID, got.ID)
}

func (suite *AppServiceTestSuite) TestPublicSearchForcesApprovedOnline() {
	_, err := suite.service.CreateApp(models.CreateAppRequest{
		Name: "online-app", Type: models.AppTypeServer,
	}, models.AppSourceAdmin)
	suite.Require().NoError(err)
	_, err = suite.service.CreateApp(models.CreateAppRequest{
		Name: "pending-app", Type: models.AppTypeServer,
	}, models.AppSourceSubmission)
	suite.Require().NoError(err)

	// Even if the caller asks for pending listings, public search pins the
	// filters back to approved/online.
	params := models.AppSearchParams{Status: models.AppStatusPending}
	apps, total, err := suite.service.SearchApps(params, true)
	suite.Require().NoError(err)
	suite.EqualValues(1, total)
	suite.Require().Len(apps, 1)
	suite.Equal("online-app", apps[0].Name)
}

func (suite *AppServiceTestSuite) TestUpdateAppPartialFields() {
	app, err := suite.service.CreateApp(models.CreateAppRequest{
		Name: "fetch", Type: models.AppTypeServer, Description: "before",
	}, models.AppSourceAdmin)
	suite.Require().NoError(err)

	desc := "after"
	updated, err := suite.service.UpdateApp(app.ID, models.UpdateAppRequest{Description: &desc})
	suite.Require().NoError(err)
	suite.Equal("after", updated.Description)
	suite.Equal("fetch", updated.Name)
}

func (suite *AppServiceTestSuite) TestDeleteAppNotFound() {
	err := suite.service.DeleteApp(12345)
	suite.Require().Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func TestAppServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppServiceTestSuite))
}
