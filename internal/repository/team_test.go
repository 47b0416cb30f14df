//go:build integration
// +build integration

package repository

import (
	"testing"

	"football-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotZero(team.ID)
	suite.NotZero(team.CreatedAt)
}

func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team1 := suite.factories.Team.WithName("Liverpool")
	err := suite.repo.Create(team1)
	suite.NoError(err)

	team2 := suite.factories.Team.WithName("Liverpool")
	err = suite.repo.Create(team2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName("Arsenal")
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName("Arsenal")

	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	// exact match only
	_, err = suite.repo.GetByName("arsenal")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(9999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.factories.Team.WithName("Juventus")
	suite.NoError(suite.repo.Create(team))

	logo := "/static/images/teams/juve.png"
	team.TeamLogo = &logo
	suite.NoError(suite.repo.Update(team))

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.NotNil(found.TeamLogo)
	suite.Equal(logo, *found.TeamLogo)
}

func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.WithName("Chelsea")
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestSearchCaseInsensitive() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Real Madrid")))
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Atletico Madrid")))
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Barcelona")))

	teams, err := suite.repo.Search("madrid")

	suite.NoError(err)
	suite.Len(teams, 2)
}

func (suite *TeamRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Milan")))
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Inter")))

	teams, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal("Milan", teams[0].Name)
	suite.Equal("Inter", teams[1].Name)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
