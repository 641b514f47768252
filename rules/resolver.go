// Package rules resolves a tzdata rule set name into the ordered list of
// concrete rule occurrences the period builder consumes, by expanding the
// recurring rule templates over a bounded window of years.
package rules

import (
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jorisvandenbos/tzengine/internal/calendar"
	"github.com/jorisvandenbos/tzengine/internal/tzexpand"
	"github.com/jorisvandenbos/tzengine/period"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

// Window bounds the years a Resolver expands rule templates over.
type Window struct {
	Min, Max tzexpand.Moment
}

// Resolver groups a file's rule lines by name and expands each name's
// templates into period.Rule occurrences on demand, implementing
// period.RuleSet.
type Resolver struct {
	byName map[string][]tzdata.RuleLine
	window Window
}

// NewResolver groups the given rule lines by name. Lookups expand each
// group's templates over win.
func NewResolver(lines []tzdata.RuleLine, win Window) *Resolver {
	byName := make(map[string][]tzdata.RuleLine)
	for _, rl := range lines {
		byName[rl.Name] = append(byName[rl.Name], rl)
	}
	return &Resolver{byName: byName, window: win}
}

// WindowForYear bounds an expansion to the single calendar year either
// side of year, the window DynamicExtender uses to rematerialize a
// zone's open rule tail for one concrete query year.
func WindowForYear(year int) Window {
	return Window{
		Min: tzexpand.Moment{Year: year - 1, Month: time.January, Day: 1, Time: tzdata.NewWallClock(0)},
		Max: tzexpand.Moment{Year: year + 1, Month: time.December, Day: 31, Time: tzdata.NewWallClock(23*time.Hour + 59*time.Minute + 59*time.Second)},
	}
}

// Resolve expands the named rule set's templates into a chronologically
// ordered list of occurrences. It reports an error if no rule set with
// that name was loaded.
func (r *Resolver) Resolve(name string) ([]period.Rule, error) {
	templates, ok := r.byName[name]
	if !ok {
		return nil, errors.Newf("rules: no rule set named %q", name)
	}
	return expand(templates, r.window)
}

// occurrence pairs one expanded activation with the template it came
// from, so Perpetual can be derived from the template rather than the
// expanded, year-bound copy tzexpand.ExpandRules returns.
type occurrence struct {
	line      tzdata.RuleLine
	template  tzdata.RuleLine
	perpetual bool
}

func expand(templates []tzdata.RuleLine, win Window) ([]period.Rule, error) {
	var occs []occurrence
	for _, tmpl := range templates {
		perpetual := tmpl.To == tzdata.MaxYear
		expanded := tzexpand.ExpandRules(win.Min, win.Max, []tzdata.RuleLine{tmpl})
		for _, e := range expanded {
			occs = append(occs, occurrence{line: e, template: tmpl, perpetual: perpetual})
		}
	}

	sort.Slice(occs, func(i, j int) bool {
		a, b := occs[i].line, occs[j].line
		if a.From != b.From {
			return a.From < b.From
		}
		if a.In != b.In {
			return a.In < b.In
		}
		return a.On.Num < b.On.Num
	})

	out := make([]period.Rule, 0, len(occs))
	for _, occ := range occs {
		from, err := fromBound(occ.line)
		if err != nil {
			return nil, errors.Wrapf(err, "rules: expanding %q", occ.line.Name)
		}
		out = append(out, period.Rule{
			From:        from,
			LocalOffset: int(time.Duration(occ.line.Save.TimeOfDay) / time.Second),
			Letter:      occ.line.Letter,
			Name:        occ.line.Name,
			Perpetual:   occ.perpetual,
			Raw:         occ.template,
		})
	}
	return out, nil
}

func fromBound(rl tzdata.RuleLine) (period.Bound, error) {
	modifier, err := modifierFromTimeForm(rl.At.Form)
	if err != nil {
		return period.Bound{}, err
	}
	civil := calendar.Civil{
		Year:  int(rl.From),
		Month: rl.In,
		Day:   rl.On.Num,
	}
	civil = calendar.AddSeconds(civil, int64(time.Duration(rl.At.TimeOfDay)/time.Second))
	return period.FiniteBound(civil, modifier), nil
}

// modifierFromTimeForm maps the clock a tzdata AT or UNTIL time is
// expressed in onto the equivalent calendar.Modifier. DaylightSavingTime
// only ever appears in a rule's SAVE column, never in an AT or UNTIL
// time, so it has no meaningful mapping here.
func modifierFromTimeForm(f tzdata.TimeForm) (calendar.Modifier, error) {
	switch f {
	case tzdata.WallClock:
		return calendar.Wall, nil
	case tzdata.StandardTime:
		return calendar.Standard, nil
	case tzdata.UniversalTime:
		return calendar.UTC, nil
	default:
		return 0, errors.Newf("rules: time form %v cannot anchor a boundary", f)
	}
}
