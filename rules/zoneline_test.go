package rules

import (
	"testing"
	"time"

	"github.com/jorisvandenbos/tzengine/period"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

func TestAdaptZoneLinesChainsUntilToFrom(t *testing.T) {
	lines := []tzdata.ZoneLine{
		{
			Offset: tzdata.TimeOfDay(0), Rules: tzdata.ZoneRules{Form: tzdata.ZoneRulesStandard}, Format: "LMT",
			Until: tzdata.Until{
				Defined: true, Year: 1900, Parts: tzdata.UntilTime,
				Month: time.January, Day: tzdata.NewDayNum(1), Time: tzdata.NewWallClock(0),
			},
		},
		{
			Continuation: true,
			Offset:       tzdata.TimeOfDay(1 * time.Hour), Rules: tzdata.ZoneRules{Form: tzdata.ZoneRulesStandard}, Format: "STD",
		},
	}

	adapted, err := AdaptZoneLines(lines)
	if err != nil {
		t.Fatalf("AdaptZoneLines: %v", err)
	}
	if len(adapted) != 2 {
		t.Fatalf("got %d zone lines, want 2", len(adapted))
	}
	if !adapted[0].From.IsMin() {
		t.Errorf("adapted[0].From should be the indefinite past")
	}
	if adapted[0].To != adapted[1].From {
		t.Errorf("adapted[0].To (%+v) should equal adapted[1].From (%+v)", adapted[0].To, adapted[1].From)
	}
	if !adapted[1].To.IsMax() {
		t.Errorf("adapted[1].To should be the indefinite future (last line in the chain)")
	}
	if adapted[1].StdOffset != 3600 {
		t.Errorf("adapted[1].StdOffset = %d, want 3600", adapted[1].StdOffset)
	}
	if adapted[0].Rules.Kind != period.ZoneLineRulesFixed || adapted[0].Rules.Offset != 0 {
		t.Errorf("adapted[0].Rules = %+v, want Fixed offset 0", adapted[0].Rules)
	}
}

func TestAdaptZoneLinesNamedRules(t *testing.T) {
	lines := []tzdata.ZoneLine{
		{Offset: tzdata.TimeOfDay(time.Hour), Rules: tzdata.ZoneRules{Form: tzdata.ZoneRulesName, Name: "EU"}, Format: "CE%sT"},
	}
	adapted, err := AdaptZoneLines(lines)
	if err != nil {
		t.Fatalf("AdaptZoneLines: %v", err)
	}
	if adapted[0].Rules.Kind != period.ZoneLineRulesNamed || adapted[0].Rules.Name != "EU" {
		t.Errorf("adapted[0].Rules = %+v, want Named EU", adapted[0].Rules)
	}
}
