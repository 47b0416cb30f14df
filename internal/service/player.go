package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"football-roster-backend/internal/database/models"
	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/logger"
	"football-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PlayerService handles business logic for players
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to create a player. Required
// numeric and boolean fields are pointers so their zero values pass the
// required check.
type CreatePlayerRequest struct {
	Name              string          `json:"name" validate:"required"`
	Position          string          `json:"position" validate:"required"`
	Price             *float64        `json:"price" validate:"required"`
	Team              string          `json:"team" validate:"required"`
	ContractDuration  *int            `json:"contract_duration" validate:"required"`
	YearsLeft         *int            `json:"years_left" validate:"required"`
	OnLoan            *bool           `json:"on_loan" validate:"required"`
	LoanTeam          *string         `json:"loan_team"`
	Statistics        json.RawMessage `json:"statistics" validate:"required" swaggertype:"object"`
	ContractStartDate string          `json:"contract_start_date" validate:"required"`
	SellOnClause      *bool           `json:"sell_on_clause"`
	SellOnPercentage  *float64        `json:"sell_on_percentage"`
	SigningDate       *string         `json:"signing_date"`
	Nationality       *string         `json:"nationality"`
	NationalityFlag   *string         `json:"nationality_flag"`
}

// UpdatePlayerRequest represents a partial player update; only keys present
// in the payload are applied, unknown keys are ignored by the JSON binding.
type UpdatePlayerRequest struct {
	Name              *string         `json:"name"`
	Position          *string         `json:"position"`
	Price             *float64        `json:"price"`
	Team              *string         `json:"team"`
	ContractDuration  *int            `json:"contract_duration"`
	YearsLeft         *int            `json:"years_left"`
	OnLoan            *bool           `json:"on_loan"`
	LoanTeam          *string         `json:"loan_team"`
	Statistics        json.RawMessage `json:"statistics" swaggertype:"object"`
	SellOnClause      *bool           `json:"sell_on_clause"`
	SellOnPercentage  *float64        `json:"sell_on_percentage"`
	SigningDate       *string         `json:"signing_date"`
	Nationality       *string         `json:"nationality"`
	NationalityFlag   *string         `json:"nationality_flag"`
	ContractStartDate *string         `json:"contract_start_date"`
}

// PlayerResponse is the list projection of a player, with the team
// flattened to its name.
type PlayerResponse struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Position          string          `json:"position"`
	Price             float64         `json:"price"`
	Team              string          `json:"team"`
	ContractDuration  int             `json:"contract_duration"`
	YearsLeft         int             `json:"years_left"`
	OnLoan            bool            `json:"on_loan"`
	LoanTeam          *string         `json:"loan_team"`
	Statistics        json.RawMessage `json:"statistics" swaggertype:"object"`
	ContractStartDate string          `json:"contract_start_date"`
	Nationality       *string         `json:"nationality"`
	NationalityFlag   *string         `json:"nationality_flag"`
}

// PlayerDetailResponse is the full record of a player, embedding the team
// object rather than just its name.
type PlayerDetailResponse struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Position          string          `json:"position"`
	Price             float64         `json:"price"`
	Team              TeamResponse    `json:"team"`
	ContractDuration  int             `json:"contract_duration"`
	YearsLeft         int             `json:"years_left"`
	OnLoan            bool            `json:"on_loan"`
	LoanTeam          *string         `json:"loan_team"`
	Statistics        json.RawMessage `json:"statistics" swaggertype:"object"`
	ContractStartDate string          `json:"contract_start_date"`
	SellOnClause      bool            `json:"sell_on_clause"`
	SellOnPercentage  *float64        `json:"sell_on_percentage"`
	SigningDate       *string         `json:"signing_date"`
	Nationality       *string         `json:"nationality"`
	NationalityFlag   *string         `json:"nationality_flag"`
	PlayerImage       *string         `json:"player_image"`
}

// PlayerSearchResult is the lightweight projection returned by search
type PlayerSearchResult struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

// Create creates a new player, creating its team on the fly when the named
// team does not exist yet.
func (s *PlayerService) Create(req *CreatePlayerRequest) (*PlayerDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	contractStart, err := parseDate("contract_start_date", req.ContractStartDate)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		Name:              req.Name,
		Position:          req.Position,
		Price:             *req.Price,
		ContractDuration:  *req.ContractDuration,
		YearsLeft:         *req.YearsLeft,
		OnLoan:            *req.OnLoan,
		LoanTeam:          req.LoanTeam,
		Statistics:        req.Statistics,
		ContractStartDate: contractStart,
		SellOnPercentage:  req.SellOnPercentage,
		Nationality:       req.Nationality,
		NationalityFlag:   req.NationalityFlag,
	}
	if req.SellOnClause != nil {
		player.SellOnClause = *req.SellOnClause
	}
	if req.SigningDate != nil {
		signing, err := parseDate("signing_date", *req.SigningDate)
		if err != nil {
			return nil, err
		}
		player.SigningDate = &signing
	}

	if err := s.repo.Create(player, req.Team); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"player_id": player.ID,
		"team":      player.Team.Name,
	}).Info("player created")

	return s.toDetailResponse(player), nil
}

// GetAll retrieves all players with their team names
func (s *PlayerService) GetAll() ([]PlayerResponse, error) {
	players, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = *s.toResponse(&players[i])
	}
	return responses, nil
}

// GetByID retrieves the full player record with the embedded team object
func (s *PlayerService) GetByID(id uint) (*PlayerDetailResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return s.toDetailResponse(player), nil
}

// Update applies a partial update. A team name that does not resolve to an
// existing team leaves the player's team unchanged; no team is created on
// update, unlike Create.
func (s *PlayerService) Update(id uint, req *UpdatePlayerRequest) (*PlayerDetailResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if req.Team != nil {
		team, err := s.teamRepo.GetByName(*req.Team)
		if err == nil {
			player.TeamID = team.ID
			player.Team = *team
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve team: %w", err)
		}
	}

	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.Price != nil {
		player.Price = *req.Price
	}
	if req.ContractDuration != nil {
		player.ContractDuration = *req.ContractDuration
	}
	if req.YearsLeft != nil {
		player.YearsLeft = *req.YearsLeft
	}
	if req.OnLoan != nil {
		player.OnLoan = *req.OnLoan
	}
	if req.LoanTeam != nil {
		player.LoanTeam = req.LoanTeam
	}
	if req.Statistics != nil {
		player.Statistics = req.Statistics
	}
	if req.SellOnClause != nil {
		player.SellOnClause = *req.SellOnClause
	}
	if req.SellOnPercentage != nil {
		player.SellOnPercentage = req.SellOnPercentage
	}
	if req.Nationality != nil {
		player.Nationality = req.Nationality
	}
	if req.NationalityFlag != nil {
		player.NationalityFlag = req.NationalityFlag
	}
	if req.ContractStartDate != nil {
		contractStart, err := parseDate("contract_start_date", *req.ContractStartDate)
		if err != nil {
			return nil, err
		}
		player.ContractStartDate = contractStart
	}
	if req.SigningDate != nil {
		signing, err := parseDate("signing_date", *req.SigningDate)
		if err != nil {
			return nil, err
		}
		player.SigningDate = &signing
	}

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toDetailResponse(player), nil
}

// Delete deletes a player permanently
func (s *PlayerService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// Search searches players by case-insensitive name substring
func (s *PlayerService) Search(query string) ([]PlayerSearchResult, error) {
	players, err := s.repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	results := make([]PlayerSearchResult, len(players))
	for i := range players {
		results[i] = PlayerSearchResult{
			ID:   players[i].ID,
			Name: players[i].Name,
			Team: players[i].Team.Name,
		}
	}
	return results, nil
}

func (s *PlayerService) toResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:                player.ID,
		Name:              player.Name,
		Position:          player.Position,
		Price:             player.Price,
		Team:              player.Team.Name,
		ContractDuration:  player.ContractDuration,
		YearsLeft:         player.YearsLeft,
		OnLoan:            player.OnLoan,
		LoanTeam:          player.LoanTeam,
		Statistics:        player.Statistics,
		ContractStartDate: formatDate(player.ContractStartDate),
		Nationality:       player.Nationality,
		NationalityFlag:   player.NationalityFlag,
	}
}

func (s *PlayerService) toDetailResponse(player *models.Player) *PlayerDetailResponse {
	return &PlayerDetailResponse{
		ID:       player.ID,
		Name:     player.Name,
		Position: player.Position,
		Price:    player.Price,
		Team: TeamResponse{
			ID:       player.Team.ID,
			Name:     player.Team.Name,
			TeamLogo: player.Team.TeamLogo,
		},
		ContractDuration:  player.ContractDuration,
		YearsLeft:         player.YearsLeft,
		OnLoan:            player.OnLoan,
		LoanTeam:          player.LoanTeam,
		Statistics:        player.Statistics,
		ContractStartDate: formatDate(player.ContractStartDate),
		SellOnClause:      player.SellOnClause,
		SellOnPercentage:  player.SellOnPercentage,
		SigningDate:       formatDatePtr(player.SigningDate),
		Nationality:       player.Nationality,
		NationalityFlag:   player.NationalityFlag,
		PlayerImage:       player.PlayerImage,
	}
}
