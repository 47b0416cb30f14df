//go:build integration
// +build integration

package repository

import (
	"testing"

	"football-roster-backend/internal/database/models"
	"football-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlayerRepositoryTestSuite) TestCreateAutoCreatesTeam() {
	player := suite.factories.Player.Create()

	err := suite.repo.Create(player, "Liverpool")

	suite.NoError(err)
	suite.NotZero(player.ID)
	suite.NotZero(player.TeamID)
	suite.Equal("Liverpool", player.Team.Name)

	team, err := suite.teamRepo.GetByName("Liverpool")
	suite.NoError(err)
	suite.Equal(team.ID, player.TeamID)
}

func (suite *PlayerRepositoryTestSuite) TestCreateReusesExistingTeam() {
	first := suite.factories.Player.WithName("Virgil van Dijk")
	suite.NoError(suite.repo.Create(first, "Liverpool"))

	second := suite.factories.Player.WithName("Alisson Becker")
	suite.NoError(suite.repo.Create(second, "Liverpool"))

	suite.Equal(first.TeamID, second.TeamID)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Team{}).Where("name = ?", "Liverpool").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *PlayerRepositoryTestSuite) TestGetByIDPreloadsTeam() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player, "Liverpool"))

	found, err := suite.repo.GetByID(player.ID)

	suite.NoError(err)
	suite.Equal("Mohamed Salah", found.Name)
	suite.Equal("Liverpool", found.Team.Name)
	suite.JSONEq(`{"goals": 22, "assists": 11}`, string(found.Statistics))
}

func (suite *PlayerRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(9999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PlayerRepositoryTestSuite) TestGetAllPreloadsTeam() {
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Salah"), "Liverpool"))
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Saka"), "Arsenal"))

	players, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(players, 2)
	suite.Equal("Liverpool", players[0].Team.Name)
	suite.Equal("Arsenal", players[1].Team.Name)
}

func (suite *PlayerRepositoryTestSuite) TestUpdate() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player, "Liverpool"))

	player.Price = 90.0
	player.YearsLeft = 1
	suite.NoError(suite.repo.Update(player))

	found, err := suite.repo.GetByID(player.ID)
	suite.NoError(err)
	suite.Equal(90.0, found.Price)
	suite.Equal(1, found.YearsLeft)
}

func (suite *PlayerRepositoryTestSuite) TestDeleteThenGet() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player, "Liverpool"))

	suite.NoError(suite.repo.Delete(player.ID))

	_, err := suite.repo.GetByID(player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PlayerRepositoryTestSuite) TestSearchCaseInsensitive() {
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Mohamed Salah"), "Liverpool"))
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("ALonso"), "Bayer Leverkusen"))
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Bukayo Saka"), "Arsenal"))

	players, err := suite.repo.Search("al")

	suite.NoError(err)
	suite.Len(players, 2)
}

func (suite *PlayerRepositoryTestSuite) TestSearchNoMatches() {
	suite.NoError(suite.repo.Create(suite.factories.Player.Create(), "Liverpool"))

	players, err := suite.repo.Search("zzz")

	suite.NoError(err)
	suite.Empty(players)
}

func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
