// Package tzc orchestrates the full build pipeline: grouping a parsed
// tzdata file's zone lines by zone, resolving each zone's rule
// references, running PeriodBuilder and PeriodShrinker per zone, and
// assembling the result into a PeriodIndex. Zones are independent of
// each other, so the build fans out across them.
package tzc

import (
	"context"
	"sync"

	cloudengerrors "cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"

	"github.com/jorisvandenbos/tzengine/index"
	"github.com/jorisvandenbos/tzengine/internal/tzexpand"
	"github.com/jorisvandenbos/tzengine/period"
	"github.com/jorisvandenbos/tzengine/rules"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

// Database is the input to a compile: the parsed zone, rule, and link
// lines of one or more tzdata source files, already concatenated.
type Database struct {
	ZoneLines []tzdata.ZoneLine
	RuleLines []tzdata.RuleLine
	LinkLines []tzdata.LinkLine
}

// groupZones splits a flat ZoneLines slice, where a line with a
// non-empty Name starts a new zone and subsequent Continuation lines
// belong to it, into one ordered slice per zone name.
func groupZones(lines []tzdata.ZoneLine) map[string][]tzdata.ZoneLine {
	zones := make(map[string][]tzdata.ZoneLine)
	var current string
	for _, l := range lines {
		if !l.Continuation {
			current = l.Name
		}
		zones[current] = append(zones[current], l)
	}
	return zones
}

// fullExpansionWindow is the year range the static build expands a
// named rule set's recurring templates over, wide enough to cover the
// whole range of 32-bit Unix timestamps.
var fullExpansionWindow = rules.Window{
	Min: tzexpand.EpochMin,
	Max: tzexpand.EpochMax,
}

// Compile builds and shrinks the period list for every zone in db,
// running one zone per goroutine, and wraps the result in a PeriodIndex
// backed by extender for any zone whose tail depends on recurring rules.
//
// Unlike errgroup's usual fail-fast behavior, one zone's structural error
// does not cancel the others: every zone still gets built, and every
// failure is reported together, so a single malformed zone line doesn't
// hide problems elsewhere in the same compile.
func Compile(ctx context.Context, db Database, extender *index.Extender) (*index.PeriodIndex, error) {
	zones := groupZones(db.ZoneLines)

	g, ctx := errgroup.WithContext(ctx)
	results := make(map[string][]period.CompiledPeriod, len(zones))
	var mu sync.Mutex
	var errs cloudengerrors.M

	for name, lines := range zones {
		name, lines := name, lines
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			adapted, err := rules.AdaptZoneLines(lines)
			if err != nil {
				errs.Append(err)
				return nil
			}
			resolver := rules.NewResolver(db.RuleLines, fullExpansionWindow)
			raw, err := period.Build(name, adapted, resolver)
			if err != nil {
				errs.Append(err)
				return nil
			}
			compiled := period.Shrink(raw)

			mu.Lock()
			results[name] = compiled
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	links := make(map[string]string, len(db.LinkLines))
	for _, l := range db.LinkLines {
		links[l.To] = l.From
	}

	return index.New(results, links, extender), nil
}
