package stage

import "plantlog/entities"

// Meta is the plant metadata that rides along with every mutation.
type Meta struct {
	Common   string
	Latin    string
	Location string
	Notes    string
}

// NewPlant builds a plant whose history holds exactly the first stage.
func NewPlant(meta Meta, ev Event) entities.Plant {
	rec := ToRecord(ev)
	rec.Position = 0
	return entities.Plant{
		Common:   meta.Common,
		Latin:    meta.Latin,
		Location: meta.Location,
		Notes:    meta.Notes,
		History:  []entities.StageEvent{rec},
	}
}

// AppendStage returns a copy of p with ev prepended as the new current stage
// and the metadata replaced. The input plant and its history are untouched;
// positions are renumbered so History[0] stays 0.
func AppendStage(p entities.Plant, ev Event, meta Meta) entities.Plant {
	rec := ToRecord(ev)
	rec.PlantID = p.PlantID
	rec.Position = 0

	hist := make([]entities.StageEvent, 0, len(p.History)+1)
	hist = append(hist, rec)
	for i, old := range p.History {
		old.Position = i + 1
		hist = append(hist, old)
	}

	out := p
	out.Common = meta.Common
	out.Latin = meta.Latin
	out.Location = meta.Location
	out.Notes = meta.Notes
	out.History = hist
	return out
}

// Current returns the plant's current stage row, nil for an empty history.
func Current(p entities.Plant) *entities.StageEvent {
	if len(p.History) == 0 {
		return nil
	}
	return &p.History[0]
}
