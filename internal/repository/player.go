package repository

import (
	"football-roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a player, resolving its team by exact name and creating
// the team row if it does not exist. Both writes share one transaction so
// a failed player insert rolls the auto-created team back.
func (r *PlayerRepository) Create(player *models.Player, teamName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Where(models.Team{Name: teamName}).FirstOrCreate(&team).Error; err != nil {
			return err
		}
		player.TeamID = team.ID
		if err := tx.Create(player).Error; err != nil {
			return err
		}
		player.Team = team
		return nil
	})
}

// GetByID retrieves a player by ID with its team
func (r *PlayerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.Preload("Team").First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetAll retrieves all players with their teams
func (r *PlayerRepository) GetAll() ([]models.Player, error) {
	var players []models.Player
	err := r.db.Preload("Team").Order("id").Find(&players).Error
	return players, err
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete deletes a player permanently
func (r *PlayerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}

// Search searches for players by case-insensitive name substring
func (r *PlayerRepository) Search(query string) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Preload("Team").Where("name ILIKE ?", "%"+query+"%").Order("id").Find(&players).Error
	return players, err
}
