package models

import "time"

// Transfer records a player moving between clubs. FromTeam and ToTeam are
// stored as plain strings rather than foreign keys so that renaming a Team
// row never rewrites transfer history.
type Transfer struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerID       uint      `json:"player_id" gorm:"not null;index"`
	FromTeam       string    `json:"from_team" gorm:"size:255;not null"`
	ToTeam         string    `json:"to_team" gorm:"size:255;not null"`
	TransferDate   time.Time `json:"transfer_date" gorm:"type:date;not null"`
	TransferWindow string    `json:"transfer_window" gorm:"size:50;not null"` // 'summer' or 'winter' by convention
	Fee            *float64  `json:"fee"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Player Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for Transfer
func (Transfer) TableName() string {
	return "transfers"
}
