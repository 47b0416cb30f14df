package repository

import (
	"football-roster-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the persistence operations for teams
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
	Search(query string) ([]models.Team, error)
}

// PlayerRepositoryInterface defines the persistence operations for players
type PlayerRepositoryInterface interface {
	Create(player *models.Player, teamName string) error
	GetByID(id uint) (*models.Player, error)
	GetAll() ([]models.Player, error)
	Update(player *models.Player) error
	Delete(id uint) error
	Search(query string) ([]models.Player, error)
}

// TransferRepositoryInterface defines the persistence operations for transfers
type TransferRepositoryInterface interface {
	Create(transfer *models.Transfer, fromTeam, toTeam string) error
	GetAll() ([]models.Transfer, error)
}
