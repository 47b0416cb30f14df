package repository

import (
	"football-roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// TransferRepository handles database operations for transfers
type TransferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

// Create inserts a transfer. The from/to team names are upserted as Team
// rows for bookkeeping, but the transfer keeps plain-string team fields.
// Everything runs in one transaction so a failed insert leaves no orphan
// team rows behind.
func (r *TransferRepository) Create(transfer *models.Transfer, fromTeam, toTeam string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range []string{fromTeam, toTeam} {
			var team models.Team
			if err := tx.Where(models.Team{Name: name}).FirstOrCreate(&team).Error; err != nil {
				return err
			}
		}
		return tx.Create(transfer).Error
	})
}

// GetAll retrieves all transfers
func (r *TransferRepository) GetAll() ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.Order("id").Find(&transfers).Error
	return transfers, err
}
