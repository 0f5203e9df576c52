package entities

import "time"

type Plant struct {
	PlantID  uint   `gorm:"primaryKey" json:"plant_id"`
	Common   string `json:"common"`
	Latin    string `json:"latin"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`

	// Most-recent-first: History[0] is the current stage.
	History []StageEvent `gorm:"foreignKey:PlantID;references:PlantID" json:"history"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
