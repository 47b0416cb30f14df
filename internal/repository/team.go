package repository

import (
	"football-roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by exact name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("id").Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team. No cascade: players referencing the team are left
// to the database's foreign key behavior.
func (r *TeamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// Search searches for teams by case-insensitive name substring
func (r *TeamRepository) Search(query string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("name ILIKE ?", "%"+query+"%").Order("id").Find(&teams).Error
	return teams, err
}
