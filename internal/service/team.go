package service

import (
	"errors"
	"fmt"

	"football-roster-backend/internal/database/models"
	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string  `json:"name" validate:"required"`
	TeamLogo *string `json:"team_logo"`
}

// UpdateTeamRequest represents a partial team update; absent fields keep
// their prior values.
type UpdateTeamRequest struct {
	Name     *string `json:"name"`
	TeamLogo *string `json:"team_logo"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	TeamLogo *string `json:"team_logo"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team := &models.Team{
		Name:     req.Name,
		TeamLogo: req.TeamLogo,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetAll retrieves all teams
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uint) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// Update applies a partial update to a team
func (s *TeamService) Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.TeamLogo != nil {
		team.TeamLogo = req.TeamLogo
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete deletes a team. Players referencing the team are not touched; the
// database foreign key decides what happens to them.
func (s *TeamService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// Search searches teams by case-insensitive name substring
func (s *TeamService) Search(query string) ([]TeamResponse, error) {
	teams, err := s.repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:       team.ID,
		Name:     team.Name,
		TeamLogo: team.TeamLogo,
	}
}
