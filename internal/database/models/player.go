package models

import (
	"encoding/json"
	"time"
)

// Player represents a squad member under contract with a team. The
// statistics payload is an opaque JSON document whose shape varies by
// position, so it is stored as raw jsonb and never interpreted here.
type Player struct {
	ID                uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string          `json:"name" gorm:"size:255;not null"`
	Position          string          `json:"position" gorm:"size:255;not null"`
	Price             float64         `json:"price" gorm:"not null"`
	TeamID            uint            `json:"team_id" gorm:"not null;index"`
	ContractDuration  int             `json:"contract_duration" gorm:"not null"`
	YearsLeft         int             `json:"years_left" gorm:"not null"`
	OnLoan            bool            `json:"on_loan" gorm:"not null"`
	LoanTeam          *string         `json:"loan_team" gorm:"size:255"`
	Statistics        json.RawMessage `json:"statistics" gorm:"type:jsonb;not null"`
	ContractStartDate time.Time       `json:"contract_start_date" gorm:"type:date;not null"`
	SellOnClause      bool            `json:"sell_on_clause" gorm:"not null;default:false"`
	SellOnPercentage  *float64        `json:"sell_on_percentage"`
	SigningDate       *time.Time      `json:"signing_date" gorm:"type:date"`
	Nationality       *string         `json:"nationality" gorm:"size:255"`
	NationalityFlag   *string         `json:"nationality_flag" gorm:"size:255"`
	PlayerImage       *string         `json:"player_image" gorm:"size:255"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Relationships
	Team      Team       `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Transfers []Transfer `json:"transfers,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
