package index

import (
	"testing"
	"time"

	"github.com/jorisvandenbos/tzengine/internal/calendar"
	"github.com/jorisvandenbos/tzengine/period"
)

func wallSeconds(hour, minute int) int64 {
	return calendar.GregorianSeconds(calendar.Civil{
		Year: 2024, Month: time.October, Day: 27, Hour: hour, Minute: minute,
	})
}

func finiteAt(wallSec int64) period.Boundary {
	return period.Boundary{Sentinel: period.InstantFinite, WallGregorianSeconds: wallSec, UnixTime: wallSec}
}

func minBoundary() period.Boundary { return period.Boundary{Sentinel: period.InstantMin} }
func maxBoundary() period.Boundary { return period.Boundary{Sentinel: period.InstantMax} }

func TestLookupByWallAmbiguous(t *testing.T) {
	w0200, w0300 := wallSeconds(2, 0), wallSeconds(3, 0)

	periods := []period.CompiledPeriod{
		{ // newest first: CET, the later period that takes over after fall-back
			Kind: period.Regular, Abbr: "CET",
			Offsets: period.CompiledOffsets{UTCOffset: 3600, StdOffset: 0},
			From:    finiteAt(w0200), To: maxBoundary(),
		},
		{
			Kind: period.Overlap,
			From: finiteAt(w0200), To: finiteAt(w0300),
		},
		{ // CEST, the earlier period the overlap window repeats from
			Kind: period.Regular, Abbr: "CEST",
			Offsets: period.CompiledOffsets{UTCOffset: 3600, StdOffset: 3600},
			From:    minBoundary(), To: finiteAt(w0300),
		},
	}

	ix := New(map[string][]period.CompiledPeriod{"Europe/Test": periods}, nil, nil)

	outcome, err := ix.LookupByWall("Europe/Test", calendar.Civil{Year: 2024, Month: time.October, Day: 27, Hour: 2, Minute: 30})
	if err != nil {
		t.Fatalf("LookupByWall: %v", err)
	}
	if outcome.Kind != WallAmbiguous {
		t.Fatalf("outcome.Kind = %v, want WallAmbiguous", outcome.Kind)
	}
	if outcome.Earlier.Abbr != "CEST" {
		t.Errorf("Earlier.Abbr = %q, want CEST", outcome.Earlier.Abbr)
	}
	if outcome.Later.Abbr != "CET" {
		t.Errorf("Later.Abbr = %q, want CET", outcome.Later.Abbr)
	}
}

func TestLookupByWallGap(t *testing.T) {
	w0200, w0300 := wallSeconds(2, 0), wallSeconds(3, 0)

	periods := []period.CompiledPeriod{
		{
			Kind: period.Regular, Abbr: "CEST",
			Offsets: period.CompiledOffsets{UTCOffset: 3600, StdOffset: 3600},
			From:    finiteAt(w0300), To: maxBoundary(),
		},
		{
			Kind:   period.Gap,
			From:   finiteAt(w0200), To: finiteAt(w0300),
			Before: period.CompiledOffsets{UTCOffset: 3600, StdOffset: 0},
			After:  period.CompiledOffsets{UTCOffset: 3600, StdOffset: 3600},
		},
		{
			Kind: period.Regular, Abbr: "CET",
			Offsets: period.CompiledOffsets{UTCOffset: 3600, StdOffset: 0},
			From:    minBoundary(), To: finiteAt(w0200),
		},
	}

	ix := New(map[string][]period.CompiledPeriod{"Europe/Test": periods}, nil, nil)

	outcome, err := ix.LookupByWall("Europe/Test", calendar.Civil{Year: 2024, Month: time.October, Day: 27, Hour: 2, Minute: 30})
	if err != nil {
		t.Fatalf("LookupByWall: %v", err)
	}
	if outcome.Kind != WallGap {
		t.Fatalf("outcome.Kind = %v, want WallGap", outcome.Kind)
	}
	if outcome.Before.StdOffset != 0 || outcome.After.StdOffset != 3600 {
		t.Errorf("outcome before/after = %+v / %+v, want std offsets 0 then 3600", outcome.Before, outcome.After)
	}
}

func TestLookupByUTCSingleMatch(t *testing.T) {
	periods := []period.CompiledPeriod{
		{Kind: period.Regular, Abbr: "UTC", Offsets: period.CompiledOffsets{UTCOffset: 0, StdOffset: 0}, From: minBoundary(), To: maxBoundary()},
	}
	ix := New(map[string][]period.CompiledPeriod{"UTC": periods}, nil, nil)

	outcome, err := ix.LookupByUTC("UTC", 1_700_000_000)
	if err != nil {
		t.Fatalf("LookupByUTC: %v", err)
	}
	if outcome.Period.Abbr != "UTC" {
		t.Errorf("outcome.Period.Abbr = %q, want UTC", outcome.Period.Abbr)
	}
}

func TestResolveZoneNotFound(t *testing.T) {
	ix := New(map[string][]period.CompiledPeriod{}, nil, nil)

	if _, err := ix.LookupByUTC("Nowhere/Zone", 0); err == nil {
		t.Fatal("expected an error for an unknown zone")
	}
}

func TestResolveFollowsLinks(t *testing.T) {
	periods := []period.CompiledPeriod{
		{Kind: period.Regular, Abbr: "UTC", Offsets: period.CompiledOffsets{UTCOffset: 0, StdOffset: 0}, From: minBoundary(), To: maxBoundary()},
	}
	ix := New(map[string][]period.CompiledPeriod{"Etc/UTC": periods}, map[string]string{"UTC": "Etc/UTC"}, nil)

	outcome, err := ix.LookupByUTC("UTC", 0)
	if err != nil {
		t.Fatalf("LookupByUTC via alias: %v", err)
	}
	if outcome.Period.Abbr != "UTC" {
		t.Errorf("outcome.Period.Abbr = %q, want UTC", outcome.Period.Abbr)
	}
}
