package index

import (
	"testing"
	"time"

	"github.com/jorisvandenbos/tzengine/internal/calendar"
	"github.com/jorisvandenbos/tzengine/period"
	"github.com/jorisvandenbos/tzengine/rules"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

// TestExtenderExtendBeyondStaticWindow covers the one path no static
// build ever exercises: a lookup against a recurring-tail zone for a
// year past the window the tzdata file was originally expanded over.
// The static build here only sees 2023-2024; year 2500 is reconstructed
// entirely by Extender.Extend from the two trailing periods' raw rule
// templates.
func TestExtenderExtendBeyondStaticWindow(t *testing.T) {
	euRules := []tzdata.RuleLine{
		{
			Name: "EU", From: 1996, To: tzdata.MaxYear,
			In: time.March, On: tzdata.NewDayLast(time.Sunday),
			At:   tzdata.NewUniversalTime(1 * time.Hour),
			Save: tzdata.NewDaylightSavingTime(1 * time.Hour), Letter: "S",
		},
		{
			Name: "EU", From: 1996, To: tzdata.MaxYear,
			In: time.October, On: tzdata.NewDayLast(time.Sunday),
			At:   tzdata.NewUniversalTime(1 * time.Hour),
			Save: tzdata.NewWallClock(0), Letter: "",
		},
	}
	// WindowForYear(y) spans y-1..y+1, so this is 2023-01-01 .. 2024-12-31.
	win := rules.Window{Min: rules.WindowForYear(2024).Min, Max: rules.WindowForYear(2023).Max}
	resolver := rules.NewResolver(euRules, win)

	zl := period.ZoneLine{
		StdOffset: 3600,
		Rules:     period.ZoneLineRules{Kind: period.ZoneLineRulesNamed, Name: "EU"},
		Format:    "CE%sT",
		From:      period.MinBound(),
		To:        period.MaxBound(),
	}

	raw, err := period.Build("Europe/Extend", []period.ZoneLine{zl}, resolver)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	compiled := period.Shrink(raw)

	first, second, ok := openEndedTail(compiled)
	if !ok {
		t.Fatalf("openEndedTail: no open-ended tail found in %+v", compiled)
	}

	extender := NewExtender(0)
	extended, err := extender.Extend("Europe/Extend", first, second, 2500)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	summer := calendar.ToUnix(calendar.Civil{Year: 2500, Month: time.August, Day: 1})
	winter := calendar.ToUnix(calendar.Civil{Year: 2500, Month: time.January, Day: 15})

	summerPeriod, err := lookupUTCIn(extended, summer)
	if err != nil {
		t.Fatalf("lookupUTCIn(summer): %v", err)
	}
	if summerPeriod.Offsets.StdOffset != 3600 {
		t.Errorf("summer 2500 StdOffset = %d, want 3600 (CEST)", summerPeriod.Offsets.StdOffset)
	}
	if summerPeriod.Abbr != "CEST" {
		t.Errorf("summer 2500 Abbr = %q, want CEST", summerPeriod.Abbr)
	}

	winterPeriod, err := lookupUTCIn(extended, winter)
	if err != nil {
		t.Fatalf("lookupUTCIn(winter): %v", err)
	}
	if winterPeriod.Offsets.StdOffset != 0 {
		t.Errorf("winter 2500 StdOffset = %d, want 0 (CET)", winterPeriod.Offsets.StdOffset)
	}
	if winterPeriod.Abbr != "CET" {
		t.Errorf("winter 2500 Abbr = %q, want CET", winterPeriod.Abbr)
	}
}

// TestExtenderExtendMissingRuleDataFails covers the precondition check:
// a tail built from a fixed-offset zone line carries no raw Rule, so
// Extend has nothing to re-expand.
func TestExtenderExtendMissingRuleDataFails(t *testing.T) {
	zl := period.ZoneLine{
		StdOffset: 0,
		Rules:     period.ZoneLineRules{Kind: period.ZoneLineRulesFixed, Offset: 0},
		Format:    "STD",
		From:      period.MinBound(),
		To:        period.MaxBound(),
	}
	raw, err := period.Build("Test/Fixed", []period.ZoneLine{zl}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	compiled := period.Shrink(raw)

	extender := NewExtender(0)
	if _, err := extender.Extend("Test/Fixed", &compiled[0], &compiled[0], 2500); err == nil {
		t.Fatal("expected an error when the tail carries no raw rule data")
	}
}
