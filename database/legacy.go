package database

import (
	"encoding/json"
	"fmt"
	"io"

	"plantlog/entities"
)

// Legacy plants.json shape: history entries carry their extras as positional
// arrays, e.g. "range": [30, "days", 45, "days"] and "duration": [48, "hours"].
// History is most-recent-first, same as the current invariant.
type legacyPlant struct {
	Common   string         `json:"common"`
	Latin    string         `json:"latin"`
	Location string         `json:"location"`
	Notes    string         `json:"notes"`
	History  []legacyAction `json:"history"`
}

type legacyAction struct {
	Action   string `json:"action"`
	Start    string `json:"start"`
	Range    []any  `json:"range"`
	Duration []any  `json:"duration"`
}

// ImportLegacyJSON decodes a legacy plants.json payload into storable plants.
// Unknown actions are kept as-is (they sort last and are never due); a
// payload that does not parse is a hard error, matching the fatal-read
// contract of the store.
func ImportLegacyJSON(r io.Reader) ([]entities.Plant, error) {
	var legacy []legacyPlant
	dec := json.NewDecoder(r)
	if err := dec.Decode(&legacy); err != nil {
		return nil, fmt.Errorf("legacy import: decode: %w", err)
	}

	out := make([]entities.Plant, 0, len(legacy))
	for i, lp := range legacy {
		if lp.Common == "" || lp.Latin == "" {
			return nil, fmt.Errorf("legacy import: plant %d: missing common/latin name", i)
		}
		if len(lp.History) == 0 {
			return nil, fmt.Errorf("legacy import: plant %d (%s): empty history", i, lp.Common)
		}
		p := entities.Plant{
			Common:   lp.Common,
			Latin:    lp.Latin,
			Location: lp.Location,
			Notes:    lp.Notes,
		}
		for pos, la := range lp.History {
			rec, err := legacyRecord(la, pos)
			if err != nil {
				return nil, fmt.Errorf("legacy import: plant %d (%s): %w", i, lp.Common, err)
			}
			p.History = append(p.History, rec)
		}
		out = append(out, p)
	}
	return out, nil
}

func legacyRecord(la legacyAction, pos int) (entities.StageEvent, error) {
	rec := entities.StageEvent{Position: pos, Kind: la.Action, Start: la.Start}
	if la.Action == "" || la.Start == "" {
		return rec, fmt.Errorf("entry %d: missing action or start", pos)
	}
	switch la.Action {
	case "sow":
		if len(la.Range) != 4 {
			return rec, fmt.Errorf("entry %d: sow range needs 4 values, got %d", pos, len(la.Range))
		}
		min, okMin := intVal(la.Range[0])
		max, okMax := intVal(la.Range[2])
		minU, okMinU := la.Range[1].(string)
		maxU, okMaxU := la.Range[3].(string)
		if !okMin || !okMax || !okMinU || !okMaxU {
			return rec, fmt.Errorf("entry %d: malformed sow range", pos)
		}
		rec.RangeMin, rec.RangeMinU = &min, minU
		rec.RangeMax, rec.RangeMaxU = &max, maxU
	case "soak", "strat":
		if len(la.Duration) != 2 {
			return rec, fmt.Errorf("entry %d: duration needs 2 values, got %d", pos, len(la.Duration))
		}
		v, okV := intVal(la.Duration[0])
		u, okU := la.Duration[1].(string)
		if !okV || !okU {
			return rec, fmt.Errorf("entry %d: malformed duration", pos)
		}
		rec.DurVal, rec.DurUnit = &v, u
	}
	return rec, nil
}

// JSON numbers arrive as float64.
func intVal(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
