package models

import "time"

// Team represents a football club. Teams are created explicitly through the
// team endpoints or implicitly when a player or transfer references a team
// name that does not exist yet.
type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	TeamLogo  *string   `json:"team_logo" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
