package rules

import (
	"testing"
	"time"

	"github.com/jorisvandenbos/tzengine/tzdata"
)

func euRules() []tzdata.RuleLine {
	return []tzdata.RuleLine{
		{
			Name: "EU", From: 1996, To: tzdata.MaxYear,
			In: time.March, On: tzdata.NewDayLast(time.Sunday),
			At:   tzdata.NewUniversalTime(1 * time.Hour),
			Save: tzdata.NewDaylightSavingTime(1 * time.Hour),
		},
		{
			Name: "EU", From: 1996, To: tzdata.MaxYear,
			In: time.October, On: tzdata.NewDayLast(time.Sunday),
			At:   tzdata.NewUniversalTime(1 * time.Hour),
			Save: tzdata.NewWallClock(0),
		},
	}
}

func TestResolverResolveExpandsChronologically(t *testing.T) {
	// WindowForYear(y) spans y-1..y+1, so this is 2023-01-01 .. 2024-12-31.
	win := Window{
		Min: WindowForYear(2024).Min,
		Max: WindowForYear(2023).Max,
	}
	r := NewResolver(euRules(), win)

	occs, err := r.Resolve("EU")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(occs) != 4 {
		t.Fatalf("got %d occurrences, want 4: %+v", len(occs), occs)
	}

	wantOffsets := []int{3600, 0, 3600, 0}
	for i, occ := range occs {
		if occ.LocalOffset != wantOffsets[i] {
			t.Errorf("occs[%d].LocalOffset = %d, want %d", i, occ.LocalOffset, wantOffsets[i])
		}
		if !occ.Perpetual {
			t.Errorf("occs[%d].Perpetual = false, want true (TO column is max)", i)
		}
		if occ.Name != "EU" {
			t.Errorf("occs[%d].Name = %q, want EU", i, occ.Name)
		}
	}
}

func TestResolverResolveUnknownName(t *testing.T) {
	r := NewResolver(euRules(), WindowForYear(2024))
	if _, err := r.Resolve("NoSuchSet"); err == nil {
		t.Fatal("expected an error for an unknown rule set name")
	}
}
