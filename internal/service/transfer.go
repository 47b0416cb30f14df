package service

import (
	"errors"
	"fmt"

	"football-roster-backend/internal/database/models"
	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/logger"
	"football-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TransferService handles business logic for transfers
type TransferService struct {
	repo       repository.TransferRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewTransferService creates a new transfer service
func NewTransferService(repo repository.TransferRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *TransferService {
	return &TransferService{
		repo:       repo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateTransferRequest represents the request to record a transfer. The
// transfer window is a free label (summer/winter by convention) and is
// deliberately not constrained here.
type CreateTransferRequest struct {
	PlayerID       *uint    `json:"player_id" validate:"required"`
	FromTeam       string   `json:"from_team" validate:"required"`
	ToTeam         string   `json:"to_team" validate:"required"`
	TransferDate   string   `json:"transfer_date" validate:"required"`
	TransferWindow string   `json:"transfer_window" validate:"required"`
	Fee            *float64 `json:"fee"`
}

// TransferResponse represents the response for transfer operations
type TransferResponse struct {
	ID             uint     `json:"id"`
	PlayerID       uint     `json:"player_id"`
	FromTeam       string   `json:"from_team"`
	ToTeam         string   `json:"to_team"`
	TransferDate   string   `json:"transfer_date"`
	TransferWindow string   `json:"transfer_window"`
	Fee            *float64 `json:"fee"`
}

// Create records a transfer, upserting the named from/to teams for
// bookkeeping. The referenced player must exist.
func (s *TransferService) Create(req *CreateTransferRequest) (*TransferResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.playerRepo.GetByID(*req.PlayerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to verify player: %w", err)
	}

	transferDate, err := parseDate("transfer_date", req.TransferDate)
	if err != nil {
		return nil, err
	}

	transfer := &models.Transfer{
		PlayerID:       *req.PlayerID,
		FromTeam:       req.FromTeam,
		ToTeam:         req.ToTeam,
		TransferDate:   transferDate,
		TransferWindow: req.TransferWindow,
		Fee:            req.Fee,
	}

	if err := s.repo.Create(transfer, req.FromTeam, req.ToTeam); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"transfer_id": transfer.ID,
		"player_id":   transfer.PlayerID,
		"from_team":   transfer.FromTeam,
		"to_team":     transfer.ToTeam,
	}).Info("transfer recorded")

	return s.toResponse(transfer), nil
}

// GetAll retrieves all transfers
func (s *TransferService) GetAll() ([]TransferResponse, error) {
	transfers, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers: %w", err)
	}

	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = *s.toResponse(&transfers[i])
	}
	return responses, nil
}

func (s *TransferService) toResponse(transfer *models.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:             transfer.ID,
		PlayerID:       transfer.PlayerID,
		FromTeam:       transfer.FromTeam,
		ToTeam:         transfer.ToTeam,
		TransferDate:   formatDate(transfer.TransferDate),
		TransferWindow: transfer.TransferWindow,
		Fee:            transfer.Fee,
	}
}
