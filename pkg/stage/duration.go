package stage

import "math"

// Unit is a duration unit a user can pick on a stage form.
type Unit string

const (
	Hours  Unit = "hours"
	Days   Unit = "days"
	Weeks  Unit = "weeks"
	Months Unit = "months"
)

// ParseUnit reports whether s names a known unit.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case Hours, Days, Weeks, Months:
		return Unit(s), true
	}
	return "", false
}

type Duration struct {
	Value int  `json:"value"`
	Unit  Unit `json:"unit"`
}

// Days resolves the duration to whole days: weeks*7, months*30, and hours
// rounded to the nearest day with halves rounding away from zero.
func (d Duration) Days() int {
	switch d.Unit {
	case Months:
		return d.Value * 30
	case Weeks:
		return d.Value * 7
	case Hours:
		return int(math.Round(float64(d.Value) / 24))
	default:
		return d.Value
	}
}
