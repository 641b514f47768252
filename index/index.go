package index

import (
	"github.com/jorisvandenbos/tzengine/internal/calendar"
	"github.com/jorisvandenbos/tzengine/period"
)

// PeriodIndex holds the compiled period list for every zone, plus link
// aliases that resolve to a canonical zone name before lookup.
type PeriodIndex struct {
	zones    map[string][]period.CompiledPeriod
	links    map[string]string
	extender *Extender
}

// New builds a PeriodIndex over already-compiled per-zone period lists.
// links maps an alias zone name to the canonical name it should resolve
// to; it may be nil.
func New(zones map[string][]period.CompiledPeriod, links map[string]string, extender *Extender) *PeriodIndex {
	if links == nil {
		links = map[string]string{}
	}
	return &PeriodIndex{zones: zones, links: links, extender: extender}
}

func (ix *PeriodIndex) resolve(zone string) (string, []period.CompiledPeriod, error) {
	name := zone
	if canonical, ok := ix.links[name]; ok {
		name = canonical
	}
	periods, ok := ix.zones[name]
	if !ok {
		return "", nil, period.NewZoneNotFoundError(zone)
	}
	return name, periods, nil
}

// openEndedTail reports whether the zone's most recent period runs to
// the indefinite future and, together with the regular period just
// before it, carries enough raw rule data for DynamicExtender to
// rematerialize the recurring tail. Only the very last period's to is
// actually :max; the one before it keeps its real, finite to (it ends
// where the last period begins) and is identified as part of the tail
// by carrying the same raw rule/zone-line data, not by its own to.
func openEndedTail(periods []period.CompiledPeriod) (first, second *period.CompiledPeriod, ok bool) {
	var regulars []*period.CompiledPeriod
	for i := range periods {
		if periods[i].Kind == period.Regular {
			regulars = append(regulars, &periods[i])
		}
	}
	if len(regulars) < 2 {
		return nil, nil, false
	}
	// periods is newest-first, so the chronologically last two regular
	// periods are the first two encountered here.
	a, b := regulars[0], regulars[1]
	if a.To.IsMax() && a.Rule != nil && a.ZoneLine != nil && b.Rule != nil {
		return a, b, true
	}
	return nil, nil, false
}

// LookupByUTC implements lookup_by_utc: the single period whose
// half-open [from, to) interval contains unixTime, falling back to
// DynamicExtender when that period is part of an open-ended recurring
// tail.
func (ix *PeriodIndex) LookupByUTC(zone string, unixTime int64) (UTCOutcome, error) {
	name, periods, err := ix.resolve(zone)
	if err != nil {
		return UTCOutcome{}, err
	}

	p, err := lookupUTCIn(periods, unixTime)
	if err != nil {
		return UTCOutcome{}, wrapZone(name, err)
	}

	if p.Kind == period.Regular && p.To.IsMax() {
		if first, second, ok := openEndedTail(periods); ok && (p == first || p == second) {
			if ix.extender == nil {
				return UTCOutcome{Period: *p}, nil
			}
			extended, err := ix.extender.Extend(name, first, second, yearOfUnix(unixTime))
			if err != nil {
				return UTCOutcome{}, wrapZone(name, err)
			}
			q, err := lookupUTCIn(extended, unixTime)
			if err != nil {
				return UTCOutcome{}, wrapZone(name, err)
			}
			return UTCOutcome{Period: *q}, nil
		}
	}

	return UTCOutcome{Period: *p}, nil
}

// lookupUTCIn walks periods, which must be newest-first, looking for the
// single period whose [from, to) interval contains unixTime. The source
// engine's early-exit shortcut ("stop once the timestamp lies at least a
// day before the current period's from") is dropped here in favor of a
// full scan; the design note explicitly allows this trade.
func lookupUTCIn(periods []period.CompiledPeriod, unixTime int64) (*period.CompiledPeriod, error) {
	var match *period.CompiledPeriod
	count := 0
	for i := range periods {
		p := &periods[i]
		from := sentinelOr(p.From, unixTime-1)
		to := sentinelOrMax(p.To, unixTime+1)
		if from <= unixTime && unixTime < to {
			match = p
			count++
		}
	}
	if count != 1 {
		return nil, period.NewStructuralError("", "lookup_by_utc did not resolve to exactly one period", nil)
	}
	return match, nil
}

func sentinelOr(b period.Boundary, fallback int64) int64 {
	if b.IsMin() {
		return fallback
	}
	return b.UnixTime
}

func sentinelOrMax(b period.Boundary, fallback int64) int64 {
	if b.IsMax() {
		return fallback
	}
	return b.UnixTime
}

// sentinelWallOr and sentinelWallOrMax are sentinelOr/sentinelOrMax's
// counterparts for matching against a boundary's wall-clock position
// (WallGregorianSeconds) rather than its UTC position (UnixTime), which
// is what LookupByWall needs to compare against a naive civil datetime.
func sentinelWallOr(b period.Boundary, fallback int64) int64 {
	if b.IsMin() {
		return fallback
	}
	return b.WallGregorianSeconds
}

func sentinelWallOrMax(b period.Boundary, fallback int64) int64 {
	if b.IsMax() {
		return fallback
	}
	return b.WallGregorianSeconds
}

func yearOfUnix(unixTime int64) int {
	return calendar.FromUnix(unixTime).Year
}

func wrapZone(zone string, err error) error {
	if se, ok := err.(*period.StructuralError); ok && se.Zone == "" {
		se.Zone = zone
		return se
	}
	return err
}
