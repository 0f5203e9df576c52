package stage

import (
	"testing"

	"plantlog/entities"
)

// --- Test fixtures ---

func durPtr(v int) *int { return &v }

// record builds a stored stage row; durVal (unit days) applies to soak/strat.
func record(t *testing.T, kind, start string, durVal *int) entities.StageEvent {
	t.Helper()
	rec := entities.StageEvent{Kind: kind, Start: start}
	if durVal != nil {
		rec.DurVal = durVal
		rec.DurUnit = "days"
	}
	return rec
}

// sowRecord builds a stored sow row with a min/max range in days.
func sowRecord(t *testing.T, start string, minDays, maxDays int) entities.StageEvent {
	t.Helper()
	return entities.StageEvent{
		Kind:     "sow",
		Start:    start,
		RangeMin: &minDays, RangeMinU: "days",
		RangeMax: &maxDays, RangeMaxU: "days",
	}
}

// plantWith builds a plant whose current stage is the given row.
func plantWith(t *testing.T, id uint, common string, cur entities.StageEvent) entities.Plant {
	t.Helper()
	cur.PlantID = id
	cur.Position = 0
	return entities.Plant{
		PlantID: id,
		Common:  common,
		Latin:   common + " latinensis",
		History: []entities.StageEvent{cur},
	}
}
