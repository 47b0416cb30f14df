package service_test

import (
	"errors"
	"testing"

	"football-roster-backend/internal/database/models"
	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/mocks"
	"football-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite tests the TeamService with mocked repositories
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockTeamRepositoryInterface
	service  *service.TeamService
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.service = service.NewTeamService(suite.mockRepo, validator.New())
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreate() {
	logo := "/static/images/teams/lfc.png"
	req := &service.CreateTeamRequest{Name: "Liverpool", TeamLogo: &logo}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(team *models.Team) error {
			team.ID = 7
			return nil
		})

	resp, err := suite.service.Create(req)

	suite.NoError(err)
	suite.Equal(uint(7), resp.ID)
	suite.Equal("Liverpool", resp.Name)
	suite.Equal(&logo, resp.TeamLogo)
}

func (suite *TeamServiceTestSuite) TestCreateMissingName() {
	resp, err := suite.service.Create(&service.CreateTeamRequest{})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(42)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(42)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *TeamServiceTestSuite) TestUpdatePartial() {
	existing := &models.Team{ID: 3, Name: "Arsenal"}
	logo := "/static/images/teams/afc.png"

	suite.mockRepo.EXPECT().GetByID(uint(3)).Return(existing, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(team *models.Team) error {
			suite.Equal("Arsenal", team.Name)
			suite.Equal(&logo, team.TeamLogo)
			return nil
		})

	resp, err := suite.service.Update(3, &service.UpdateTeamRequest{TeamLogo: &logo})

	suite.NoError(err)
	suite.Equal("Arsenal", resp.Name)
	suite.Equal(&logo, resp.TeamLogo)
}

func (suite *TeamServiceTestSuite) TestUpdateEmptyRequestIsNoOp() {
	existing := &models.Team{ID: 3, Name: "Arsenal"}

	suite.mockRepo.EXPECT().GetByID(uint(3)).Return(existing, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(team *models.Team) error {
			suite.Equal("Arsenal", team.Name)
			suite.Nil(team.TeamLogo)
			return nil
		})

	resp, err := suite.service.Update(3, &service.UpdateTeamRequest{})

	suite.NoError(err)
	suite.Equal("Arsenal", resp.Name)
}

func (suite *TeamServiceTestSuite) TestUpdateNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Update(99, &service.UpdateTeamRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().GetByID(uint(5)).Return(&models.Team{ID: 5, Name: "Chelsea"}, nil)
	suite.mockRepo.EXPECT().Delete(uint(5)).Return(nil)

	suite.NoError(suite.service.Delete(5))
}

func (suite *TeamServiceTestSuite) TestDeleteNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(5)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(5)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestSearch() {
	suite.mockRepo.EXPECT().Search("mad").Return([]models.Team{
		{ID: 1, Name: "Real Madrid"},
		{ID: 2, Name: "Atletico Madrid"},
	}, nil)

	resp, err := suite.service.Search("mad")

	suite.NoError(err)
	suite.Len(resp, 2)
	suite.Equal("Real Madrid", resp[0].Name)
}

func (suite *TeamServiceTestSuite) TestGetAllRepositoryError() {
	suite.mockRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	resp, err := suite.service.GetAll()

	suite.Nil(resp)
	suite.ErrorContains(err, "failed to get teams")
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
