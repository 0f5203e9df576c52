package stage

import (
	"fmt"
	"time"

	"plantlog/entities"
)

// Kind discriminates the stage event variants.
type Kind string

const (
	KindSow    Kind = "sow"
	KindSoak   Kind = "soak"
	KindStrat  Kind = "strat"
	KindSprout Kind = "sprout"
)

// Event is one occurrence of a cultivation stage. The variant set is closed:
// Sow, Soak, Strat, Sprout. Rows with other kinds never become an Event —
// FromRecord rejects them and the display paths fall back to rank 99 /
// never-due (see Priority and ClassifyRecord).
type Event interface {
	Kind() Kind
	StartDate() time.Time
	sealed()
}

// Sow expects sprouting within [Min, Max] after Start.
type Sow struct {
	Start time.Time
	Min   Duration
	Max   Duration
}

// Soak runs for Dur after Start. Units restricted to hours/days at validation.
type Soak struct {
	Start time.Time
	Dur   Duration
}

// Strat (cold stratification) runs for Dur after Start.
type Strat struct {
	Start time.Time
	Dur   Duration
}

// Sprout is terminal: the plant germinated on Start.
type Sprout struct {
	Start time.Time
}

func (e Sow) Kind() Kind    { return KindSow }
func (e Soak) Kind() Kind   { return KindSoak }
func (e Strat) Kind() Kind  { return KindStrat }
func (e Sprout) Kind() Kind { return KindSprout }

func (e Sow) StartDate() time.Time    { return e.Start }
func (e Soak) StartDate() time.Time   { return e.Start }
func (e Strat) StartDate() time.Time  { return e.Start }
func (e Sprout) StartDate() time.Time { return e.Start }

func (Sow) sealed()    {}
func (Soak) sealed()   {}
func (Strat) sealed()  {}
func (Sprout) sealed() {}

// Display order of stage buckets; unknown kinds sort last but do not fail.
var priorities = map[Kind]int{KindSoak: 0, KindStrat: 1, KindSow: 2, KindSprout: 3}

func Priority(kind string) int {
	if p, ok := priorities[Kind(kind)]; ok {
		return p
	}
	return 99
}

// FromRecord rebuilds the typed event from a stored row. Unknown kinds and
// rows missing their variant columns are errors, not silent fallbacks.
func FromRecord(rec entities.StageEvent) (Event, error) {
	start, err := time.Parse("2006-01-02", rec.Start)
	if err != nil {
		return nil, fmt.Errorf("event %d: bad start %q", rec.EventID, rec.Start)
	}
	switch Kind(rec.Kind) {
	case KindSow:
		if rec.RangeMin == nil || rec.RangeMax == nil {
			return nil, fmt.Errorf("event %d: sow row without range", rec.EventID)
		}
		return Sow{
			Start: start,
			Min:   Duration{Value: *rec.RangeMin, Unit: Unit(rec.RangeMinU)},
			Max:   Duration{Value: *rec.RangeMax, Unit: Unit(rec.RangeMaxU)},
		}, nil
	case KindSoak, KindStrat:
		if rec.DurVal == nil {
			return nil, fmt.Errorf("event %d: %s row without duration", rec.EventID, rec.Kind)
		}
		d := Duration{Value: *rec.DurVal, Unit: Unit(rec.DurUnit)}
		if Kind(rec.Kind) == KindSoak {
			return Soak{Start: start, Dur: d}, nil
		}
		return Strat{Start: start, Dur: d}, nil
	case KindSprout:
		return Sprout{Start: start}, nil
	}
	return nil, fmt.Errorf("event %d: unknown kind %q", rec.EventID, rec.Kind)
}

// ToRecord flattens an event into a storable row. PlantID, EventID and
// Position are left for the caller.
func ToRecord(ev Event) entities.StageEvent {
	rec := entities.StageEvent{
		Kind:  string(ev.Kind()),
		Start: ev.StartDate().Format("2006-01-02"),
	}
	switch e := ev.(type) {
	case Sow:
		min, max := e.Min.Value, e.Max.Value
		rec.RangeMin, rec.RangeMinU = &min, string(e.Min.Unit)
		rec.RangeMax, rec.RangeMaxU = &max, string(e.Max.Unit)
	case Soak:
		v := e.Dur.Value
		rec.DurVal, rec.DurUnit = &v, string(e.Dur.Unit)
	case Strat:
		v := e.Dur.Value
		rec.DurVal, rec.DurUnit = &v, string(e.Dur.Unit)
	case Sprout:
	}
	return rec
}
