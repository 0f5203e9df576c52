package service

import (
	"time"

	"plantlog/entities"
	"plantlog/pkg/stage"
)

// SubmitRequest is one form submission: plant metadata plus one new stage
// event. Idx, when it names an existing plant, appends; otherwise a new
// plant is created.
type SubmitRequest struct {
	Idx      *uint
	Common   string
	Latin    string
	Location string
	Notes    string
	Event    stage.EventInput
}

type PlantService interface {
	// Overview returns the collection in display order as of now.
	Overview(now time.Time) ([]entities.Plant, error)
	Get(id uint) (*entities.Plant, error)
	Submit(req SubmitRequest) (*entities.Plant, error)
	UpdateMeta(id uint, meta stage.Meta) (*entities.Plant, error)
	Locations() ([]string, error)
}
