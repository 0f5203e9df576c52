package stage

import (
	"strings"
	"time"
)

// ValidationErrors collects every failed rule for one submitted action. The
// caller gets the full set; nothing is mutated or persisted when it is
// non-empty.
type ValidationErrors []string

func (v ValidationErrors) Error() string { return strings.Join(v, "; ") }

// EventInput is the stage-specific slice of the mutation request, still in
// wire shape (strings and raw ints).
type EventInput struct {
	Stage string `json:"stage"`
	Date  string `json:"date"`

	RangeMin  int    `json:"range_min"`
	RangeMinU string `json:"range_min_u"`
	RangeMax  int    `json:"range_max"`
	RangeMaxU string `json:"range_max_u"`

	DurVal  int    `json:"dur_val"`
	DurUnit string `json:"dur_unit"`
}

// BuildEvent validates in and builds the typed event. All applicable checks
// run; errors accumulate instead of short-circuiting. The returned event is
// only meaningful when the error slice is empty.
func BuildEvent(in EventInput) (Event, ValidationErrors) {
	var errs ValidationErrors

	kind := Kind(strings.TrimSpace(in.Stage))
	switch kind {
	case KindSow, KindSoak, KindStrat, KindSprout:
	default:
		return nil, ValidationErrors{"unknown stage"}
	}

	start, dateOK := parseDate(in.Date)
	if !dateOK {
		switch kind {
		case KindSow:
			errs = append(errs, "sow date required")
		case KindSoak:
			errs = append(errs, "soak start date required")
		case KindStrat:
			errs = append(errs, "strat start date required")
		case KindSprout:
			errs = append(errs, "sprout date required")
		}
	}

	var ev Event
	switch kind {
	case KindSow:
		minU, okMin := ParseUnit(in.RangeMinU)
		maxU, okMax := ParseUnit(in.RangeMaxU)
		if !okMin || !okMax {
			errs = append(errs, "invalid duration unit")
		}
		min := Duration{Value: in.RangeMin, Unit: minU}
		max := Duration{Value: in.RangeMax, Unit: maxU}
		if min.Days() <= 0 || max.Days() <= 0 {
			errs = append(errs, "sprout range must be > 0")
		}
		if min.Days() > max.Days() {
			errs = append(errs, "sprout min greater than max")
		}
		ev = Sow{Start: start, Min: min, Max: max}
	case KindSoak:
		u, ok := ParseUnit(in.DurUnit)
		if !ok || (u != Hours && u != Days) {
			errs = append(errs, "soak duration must be in hours or days")
		}
		if in.DurVal <= 0 {
			errs = append(errs, "duration must be > 0")
		}
		ev = Soak{Start: start, Dur: Duration{Value: in.DurVal, Unit: u}}
	case KindStrat:
		u, ok := ParseUnit(in.DurUnit)
		if !ok {
			errs = append(errs, "invalid duration unit")
		}
		if in.DurVal <= 0 {
			errs = append(errs, "duration must be > 0")
		}
		ev = Strat{Start: start, Dur: Duration{Value: in.DurVal, Unit: u}}
	case KindSprout:
		ev = Sprout{Start: start}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return ev, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
