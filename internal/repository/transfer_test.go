//go:build integration
// +build integration

package repository

import (
	"testing"

	"football-roster-backend/internal/database/models"
	"football-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TransferRepositoryTestSuite tests the TransferRepository
type TransferRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TransferRepository
	playerRepo    *PlayerRepository
	factories     *testutils.FactorySet
}

func (suite *TransferRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTransferRepository(suite.baseTestSuite.DB)
	suite.playerRepo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TransferRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TransferRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TransferRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TransferRepositoryTestSuite) createPlayer() *models.Player {
	player := suite.factories.Player.Create()
	suite.Require().NoError(suite.playerRepo.Create(player, "Liverpool"))
	return player
}

func (suite *TransferRepositoryTestSuite) teamCount() int64 {
	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Team{}).Count(&count).Error)
	return count
}

func (suite *TransferRepositoryTestSuite) TestCreateUpsertsTeams() {
	player := suite.createPlayer()
	transfer := suite.factories.Transfer.Create(player.ID)

	err := suite.repo.Create(transfer, transfer.FromTeam, transfer.ToTeam)

	suite.NoError(err)
	suite.NotZero(transfer.ID)
	// Liverpool already existed; only AS Roma is new
	suite.Equal(int64(2), suite.teamCount())

	var roma models.Team
	suite.NoError(suite.baseTestSuite.DB.Where("name = ?", "AS Roma").First(&roma).Error)
}

func (suite *TransferRepositoryTestSuite) TestCreateReusesExistingTeams() {
	player := suite.createPlayer()

	first := suite.factories.Transfer.Create(player.ID)
	suite.NoError(suite.repo.Create(first, first.FromTeam, first.ToTeam))

	second := suite.factories.Transfer.Create(player.ID)
	suite.NoError(suite.repo.Create(second, second.FromTeam, second.ToTeam))

	suite.Equal(int64(2), suite.teamCount())
}

func (suite *TransferRepositoryTestSuite) TestCreateRollsBackOnBadPlayer() {
	before := suite.teamCount()

	transfer := suite.factories.Transfer.Create(9999)
	err := suite.repo.Create(transfer, "Nowhere FC", "Elsewhere FC")

	suite.Error(err)
	// the team upserts must not survive the failed insert
	suite.Equal(before, suite.teamCount())
}

func (suite *TransferRepositoryTestSuite) TestCreateDateRoundTrip() {
	player := suite.createPlayer()
	transfer := suite.factories.Transfer.Create(player.ID)

	suite.NoError(suite.repo.Create(transfer, transfer.FromTeam, transfer.ToTeam))

	transfers, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(transfers, 1)
	suite.Equal("2023-07-01", transfers[0].TransferDate.Format("2006-01-02"))
}

func (suite *TransferRepositoryTestSuite) TestGetAllOrdered() {
	player := suite.createPlayer()
	for i := 0; i < 3; i++ {
		transfer := suite.factories.Transfer.Create(player.ID)
		suite.NoError(suite.repo.Create(transfer, transfer.FromTeam, transfer.ToTeam))
	}

	transfers, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(transfers, 3)
	suite.Less(transfers[0].ID, transfers[1].ID)
	suite.Less(transfers[1].ID, transfers[2].ID)
}

func TestTransferRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransferRepositoryTestSuite))
}
