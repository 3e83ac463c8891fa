package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type ClaimServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service ClaimService
	appID   uint
}

func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewClaimService(
		repositories.NewClaimRepository(suite.db),
		repositories.NewAppRepository(suite.db),
	)

	app := &models.App{Name: "filesystem", Type: models.AppTypeServer}
	suite.Require().NoError(suite.db.Create(app).Error)
	suite.appID = app.ID
}

func (suite *ClaimServiceTestSuite) TestCreateClaimIssuesToken() {
	claim, err := suite.service.CreateClaim(models.CreateClaimRequest{
		AppID:    suite.appID,
		ProofURL: "https://example.com/proof",
	}, 1)
	suite.Require().NoError(err)
	suite.NotEmpty(claim.Token)
	suite.Equal(models.ClaimStatusPending, claim.Status)
}

func (suite *ClaimServiceTestSuite) TestCreateClaimUnknownApp() {
	_, err := suite.service.CreateClaim(models.CreateClaimRequest{
		AppID:    9999,
		ProofURL: "https://example.com/proof",
	}, 1)
	suite.Require().Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *ClaimServiceTestSuite) TestOnePendingClaimPerAppAndUser() {
	req := models.CreateClaimRequest{AppID: suite.appID, ProofURL: "https://example.com/proof"}

	_, err := suite.service.CreateClaim(req, 1)
	suite.Require().NoError(err)

	_, err = suite.service.CreateClaim(req, 1)
	suite.Require().Error(err)
	suite.IsType(models.ErrorConflict{}, err)

	// A different user can still claim the same app.
	_, err = suite.service.CreateClaim(req, 2)
	suite.NoError(err)
}

func (suite *ClaimServiceTestSuite) TestReviewClaim() {
	claim, err := suite.service.CreateClaim(models.CreateClaimRequest{
		AppID:    suite.appID,
		ProofURL: "https://example.com/proof",
	}, 1)
	suite.Require().NoError(err)

	reviewed, err := suite.service.ReviewClaim(claim.ID, models.ReviewRequest{Approve: true}, 42)
	suite.Require().NoError(err)
	suite.Equal(models.ClaimStatusApproved, reviewed.Status)
	suite.Require().NotNil(reviewed.ReviewedBy)
	suite.EqualValues(42, *reviewed.ReviewedBy)
	suite.NotNil(reviewed.ReviewedAt)

	// Second review is rejected.
	_, err = suite.service.ReviewClaim(claim.ID, models.ReviewRequest{Approve: false}, 42)
	suite.Require().Error(err)
	suite.IsType(models.ErrorConflict{}, err)
}

func (suite *ClaimServiceTestSuite) TestResolvedClaimUnblocksNewClaim() {
	req := models.CreateClaimRequest{AppID: suite.appID, ProofURL: "https://example.com/proof"}

	claim, err := suite.service.CreateClaim(req, 1)
	suite.Require().NoError(err)

	_, err = suite.service.ReviewClaim(claim.ID, models.ReviewRequest{Approve: false, Reason: "not enough proof"}, 42)
	suite.Require().NoError(err)

	_, err = suite.service.CreateClaim(req, 1)
	suite.NoError(err)
}

func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}
