package stage

import "testing"

func TestDurationDays(t *testing.T) {
	cases := []struct {
		value int
		unit  Unit
		want  int
	}{
		{1, Days, 1},
		{14, Days, 14},
		{0, Days, 0},
		{1, Weeks, 7},
		{6, Weeks, 42},
		{1, Months, 30},
		{3, Months, 90},
		{24, Hours, 1},
		{48, Hours, 2},
		{5, Hours, 0},   // round(5/24) = 0
		{13, Hours, 1},  // round(0.54)
		{36, Hours, 2},  // 1.5 rounds away from zero
		{60, Hours, 3},  // 2.5 rounds away from zero
		{0, Hours, 0},
	}
	for _, c := range cases {
		got := Duration{Value: c.value, Unit: c.unit}.Days()
		if got != c.want {
			t.Errorf("Duration{%d, %s}.Days() = %d, want %d", c.value, c.unit, got, c.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for _, s := range []string{"hours", "days", "weeks", "months"} {
		if _, ok := ParseUnit(s); !ok {
			t.Errorf("ParseUnit(%q) not recognized", s)
		}
	}
	for _, s := range []string{"", "fortnights", "Days", "day"} {
		if _, ok := ParseUnit(s); ok {
			t.Errorf("ParseUnit(%q) unexpectedly recognized", s)
		}
	}
}
