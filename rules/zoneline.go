package rules

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jorisvandenbos/tzengine/internal/calendar"
	"github.com/jorisvandenbos/tzengine/internal/tzexpand"
	"github.com/jorisvandenbos/tzengine/period"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

// AdaptZoneLines converts one zone's continuation chain, as parsed by
// tzdata, into the builder's own ZoneLine shape: each line's UNTIL column
// becomes the From of period.ZoneLine n+1 as well as the To of line n,
// and the chain's final line is left open-ended (To = MaxBound).
func AdaptZoneLines(lines []tzdata.ZoneLine) ([]period.ZoneLine, error) {
	out := make([]period.ZoneLine, len(lines))
	from := period.MinBound()
	for i, l := range lines {
		rules, err := adaptRulesField(l.Rules)
		if err != nil {
			return nil, errors.Wrapf(err, "rules: zone line %d", i)
		}

		to := period.MaxBound()
		if l.Until.Defined {
			to, err = untilBound(l.Until)
			if err != nil {
				return nil, errors.Wrapf(err, "rules: zone line %d UNTIL", i)
			}
		}

		out[i] = period.ZoneLine{
			StdOffset: int(time.Duration(l.Offset) / time.Second),
			Rules:     rules,
			Format:    l.Format,
			From:      from,
			To:        to,
		}
		from = to
	}
	return out, nil
}

func adaptRulesField(r tzdata.ZoneRules) (period.ZoneLineRules, error) {
	switch r.Form {
	case tzdata.ZoneRulesStandard:
		return period.ZoneLineRules{Kind: period.ZoneLineRulesFixed, Offset: 0}, nil
	case tzdata.ZoneRulesTime:
		return period.ZoneLineRules{
			Kind:   period.ZoneLineRulesFixed,
			Offset: int(time.Duration(r.Time.TimeOfDay) / time.Second),
		}, nil
	case tzdata.ZoneRulesName:
		return period.ZoneLineRules{Kind: period.ZoneLineRulesNamed, Name: r.Name}, nil
	default:
		return period.ZoneLineRules{}, errors.Newf("rules: unknown zone rules form %v", r.Form)
	}
}

// untilBound completes a zone line's UNTIL column into a civil datetime,
// defaulting any trailing fields the column omitted to their earliest
// possible value, same as tzdata's own textual convention for a partial
// UNTIL column.
func untilBound(u tzdata.Until) (period.Bound, error) {
	month := time.January
	if u.Parts.Has(tzdata.UntilMonthOnly) {
		month = u.Month
	}

	year := u.Year
	day := 1
	if u.Parts.Has(tzdata.UntilDayOnly) {
		if u.Day.Form == tzdata.DayFormNum {
			day = u.Day.Num
		} else {
			year, month, day = tzexpand.DayOfMonth(year, month, u.Day)
		}
	}

	t := tzdata.NewWallClock(0)
	if u.Parts.Has(tzdata.UntilTimeOnly) {
		t = u.Time
	}

	modifier, err := modifierFromTimeForm(t.Form)
	if err != nil {
		return period.Bound{}, err
	}

	civil := calendar.Civil{Year: year, Month: month, Day: day}
	civil = calendar.AddSeconds(civil, int64(time.Duration(t.TimeOfDay)/time.Second))
	return period.FiniteBound(civil, modifier), nil
}
