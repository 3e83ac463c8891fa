package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/config"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = NewAuthService(repositories.NewUserRepository(suite.db))
}

func (suite *AuthServiceTestSuite) register() *models.AuthResponse {
	resp, err := suite.service.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *AuthServiceTestSuite) TestRegisterHashesPasswordAndIssuesToken() {
	resp := suite.register()

	suite.NotEmpty(resp.Token)
	suite.NotEqual("secret123", resp.User.Password)
	suite.Equal(models.RoleUser, resp.User.Role)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	suite.Require().NoError(err)

	claims, ok := token.Claims.(jwt.MapClaims)
	suite.Require().True(ok)
	suite.Equal("alice", claims["username"])
	suite.EqualValues(resp.User.ID, claims["user_id"])
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmailConflicts() {
	suite.register()

	_, err := suite.service.Register(models.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	suite.Require().Error(err)
	suite.IsType(models.ErrorConflict{}, err)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	suite.register()

	resp, err := suite.service.Login(models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.register()

	_, err := suite.service.Login(models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	suite.Require().Error(err)
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	suite.Require().Error(err)
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
