package index

import (
	"github.com/jorisvandenbos/tzengine/internal/calendar"
	"github.com/jorisvandenbos/tzengine/period"
)

// LookupByWall implements lookup_by_wall: matches the naive wall
// datetime against every period's wall_gregorian_seconds span. Exactly
// one match means an ordinary or gap period; exactly three means an
// overlap sandwiched between the two regular periods it ambiguates.
func (ix *PeriodIndex) LookupByWall(zone string, wall calendar.Civil) (WallOutcome, error) {
	name, periods, err := ix.resolve(zone)
	if err != nil {
		return WallOutcome{}, err
	}

	seconds := calendar.GregorianSeconds(wall)
	matches := matchWall(periods, seconds)

	if needsExtension(matches) {
		if first, second, ok := openEndedTail(periods); ok {
			if ix.extender != nil {
				extended, err := ix.extender.Extend(name, first, second, wall.Year)
				if err != nil {
					return WallOutcome{}, wrapZone(name, err)
				}
				matches = matchWall(extended, seconds)
			}
		}
	}

	outcome, err := resolveWallMatches(matches)
	if err != nil {
		return WallOutcome{}, wrapZone(name, err)
	}
	return outcome, nil
}

func matchWall(periods []period.CompiledPeriod, seconds int64) []*period.CompiledPeriod {
	var out []*period.CompiledPeriod
	for i := range periods {
		p := &periods[i]
		from := sentinelWallOr(p.From, seconds-1)
		to := sentinelWallOrMax(p.To, seconds+1)
		if from <= seconds && seconds < to {
			out = append(out, p)
		}
	}
	return out
}

func needsExtension(matches []*period.CompiledPeriod) bool {
	for _, m := range matches {
		if m.Kind == period.Regular && m.To.IsMax() {
			return true
		}
	}
	return false
}

func resolveWallMatches(matches []*period.CompiledPeriod) (WallOutcome, error) {
	switch len(matches) {
	case 1:
		m := matches[0]
		if m.Kind == period.Gap {
			return WallOutcome{
				Kind:    WallGap,
				Before:  m.Before,
				After:   m.After,
				GapFrom: m.From,
				GapTo:   m.To,
			}, nil
		}
		return WallOutcome{Kind: WallOk, Period: *m}, nil
	case 3:
		if matches[1].Kind != period.Overlap {
			return WallOutcome{}, period.NewStructuralError("", "wall lookup matched three periods but the middle one is not an overlap", nil)
		}
		// matches is newest-first, so position 0 is the later regular
		// period and position 2 is the earlier one.
		return WallOutcome{Kind: WallAmbiguous, Earlier: *matches[2], Later: *matches[0]}, nil
	default:
		return WallOutcome{}, period.NewStructuralError("", "wall lookup matched an unexpected number of periods", nil)
	}
}
