// Package index holds the compiled per-zone period lists and answers the
// two queries the engine exists for: what period contains a UTC instant,
// and what period(s) contain a wall-clock datetime.
package index

import "github.com/jorisvandenbos/tzengine/period"

// UTCOutcome is the result of a successful lookup_by_utc query: the one
// period containing the instant. An unknown zone or a structural problem
// is reported through the error returned alongside it instead.
type UTCOutcome struct {
	Period period.CompiledPeriod
}

// WallKind identifies which of the three wall-lookup outcomes occurred.
type WallKind int

const (
	// WallOk means the wall datetime fell in exactly one regular period.
	WallOk WallKind = iota
	// WallGap means the wall datetime never occurred; it fell in the
	// synthetic interval between two regular periods.
	WallGap
	// WallAmbiguous means the wall datetime occurred twice; it fell in
	// the synthetic overlap between two regular periods.
	WallAmbiguous
)

// WallOutcome is the result of a lookup_by_wall query.
type WallOutcome struct {
	Kind WallKind

	// Period is set when Kind == WallOk.
	Period period.CompiledPeriod

	// Before, After are set when Kind == WallGap: the regular periods
	// immediately before and after the gap.
	Before, After period.CompiledOffsets
	GapFrom, GapTo period.Boundary

	// Earlier, Later are set when Kind == WallAmbiguous: the two
	// regular periods the wall datetime could belong to, earlier one
	// first.
	Earlier, Later period.CompiledPeriod
}
