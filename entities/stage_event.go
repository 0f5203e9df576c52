package entities

import "time"

type StageEvent struct {
	EventID  uint   `gorm:"primaryKey" json:"event_id"`
	PlantID  uint   `gorm:"index" json:"plant_id"`
	Position int    `gorm:"index" json:"position"` // 0 = current stage
	Kind     string `json:"kind"`                  // sow|soak|strat|sprout
	Start    string `json:"start"`                 // YYYY-MM-DD

	// sow-specific
	RangeMin  *int   `json:"range_min,omitempty"`
	RangeMinU string `json:"range_min_u,omitempty"`
	RangeMax  *int   `json:"range_max,omitempty"`
	RangeMaxU string `json:"range_max_u,omitempty"`

	// soak/strat-specific
	DurVal  *int   `json:"dur_val,omitempty"`
	DurUnit string `json:"dur_unit,omitempty"`

	CreatedAt time.Time
}
