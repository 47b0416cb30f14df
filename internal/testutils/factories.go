package testutils

import (
	"encoding/json"
	"time"

	"football-roster-backend/internal/database/models"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	logo := "/static/images/teams/testfc.png"
	return &models.Team{
		Name:     "Test FC",
		TeamLogo: &logo,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// Create creates a test Player with default values. TeamID must be set by
// the caller (or the player created through PlayerRepository.Create, which
// resolves the team by name).
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		Name:              "Mohamed Salah",
		Position:          "RW",
		Price:             75.5,
		ContractDuration:  4,
		YearsLeft:         2,
		OnLoan:            false,
		Statistics:        json.RawMessage(`{"goals": 22, "assists": 11}`),
		ContractStartDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(name string) *models.Player {
	player := f.Create()
	player.Name = name
	return player
}

// WithTeam sets the team ID for the player
func (f *PlayerFactory) WithTeam(teamID uint) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// TransferFactory provides methods to create test Transfer data
type TransferFactory struct{}

// Create creates a test Transfer with default values
func (f *TransferFactory) Create(playerID uint) *models.Transfer {
	fee := 42.0
	return &models.Transfer{
		PlayerID:       playerID,
		FromTeam:       "AS Roma",
		ToTeam:         "Liverpool",
		TransferDate:   time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		TransferWindow: "summer",
		Fee:            &fee,
	}
}

// FactorySet bundles all factories for convenient test access
type FactorySet struct {
	Team     *TeamFactory
	Player   *PlayerFactory
	Transfer *TransferFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     &TeamFactory{},
		Player:   &PlayerFactory{},
		Transfer: &TransferFactory{},
	}
}
