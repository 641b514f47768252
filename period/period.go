package period

import "github.com/jorisvandenbos/tzengine/internal/calendar"

// Type identifies the shape of a period's transition into the one before
// it: a normal standing period, or one of the two synthetic periods that
// mark a clock discontinuity.
type Type int

const (
	// Regular is an ordinary period: local time runs forward at one rate
	// throughout it.
	Regular Type = iota
	// Gap is a synthetic period covering wall-clock values that never
	// occurred, because the clock jumped forward at its start.
	Gap
	// Overlap is a synthetic period covering wall-clock values that
	// occurred twice, because the clock jumped backward at its start.
	Overlap
)

func (t Type) String() string {
	switch t {
	case Regular:
		return "Regular"
	case Gap:
		return "Gap"
	case Overlap:
		return "Overlap"
	default:
		return "<UNDEFINED>"
	}
}

// Offsets is a regular period's contribution to the wall clock, in the
// builder's internal vocabulary: the zone's fixed standard offset and the
// rule-supplied addition to it.
type Offsets struct {
	StdOffsetFromUTC   int // seconds, zone's standard offset east of UTC
	LocalOffsetFromStd int // seconds, DST or other rule-supplied addition
}

// Total returns the full offset from UTC to local wall-clock time.
func (o Offsets) Total() int { return o.StdOffsetFromUTC + o.LocalOffsetFromStd }

// CompiledOffsets is the same pair under the public vocabulary that
// PeriodShrinker renames the fields to: UTCOffset is the zone's standard
// offset, StdOffset is the DST addition on top of it.
type CompiledOffsets struct {
	UTCOffset int
	StdOffset int
}

func (o Offsets) compiled() CompiledOffsets {
	return CompiledOffsets{UTCOffset: o.StdOffsetFromUTC, StdOffset: o.LocalOffsetFromStd}
}

// RawPeriod is one period as the builder assembles it: every boundary is
// still resolved into all three civil representations.
type RawPeriod struct {
	Kind Type

	From, To BoundaryInstant

	// Offsets and Abbr are populated for Regular periods only.
	Offsets Offsets
	Abbr    string

	// Before and After are populated for Gap periods only: offset
	// projections of the regular period immediately before and after
	// the gap, letting callers report the clock's behavior on both
	// sides of the discontinuity without a back-reference to the
	// periods themselves.
	Before, After Offsets

	// Rule and ZoneLine are set only on a Regular period built from a
	// named rule occurrence that either runs to the indefinite future or
	// is one of the two trailing periods markOpenEndedTail flags:
	// DynamicExtender re-expands Rule.Raw against a concrete query year
	// to rematerialize the open tail.
	Rule     *Rule
	ZoneLine *ZoneLine
}

// Boundary is a period boundary as CompiledPeriod stores it: the two
// integer sorts are always kept, since PeriodIndex's linear UTC and wall
// lookups compare against them. Sentinel is set when the boundary
// is the indefinite past or future, in which case the integer sorts are
// meaningless and callers must not compare them. Wall is retained only
// for a Gap period's boundaries, which callers need to report the
// missing wall-clock interval; it is dropped everywhere else.
type Boundary struct {
	Sentinel InstantKind // InstantFinite, InstantMin, or InstantMax

	UnixTime             int64
	WallGregorianSeconds int64
	Wall                 *calendar.Civil
}

// IsMin reports whether b is the indefinite-past sentinel.
func (b Boundary) IsMin() bool { return b.Sentinel == InstantMin }

// IsMax reports whether b is the indefinite-future sentinel.
func (b Boundary) IsMax() bool { return b.Sentinel == InstantMax }

func boundaryFromInstant(i BoundaryInstant, keepWall bool) Boundary {
	if i.IsMin() || i.IsMax() {
		return Boundary{Sentinel: i.Kind}
	}
	b := Boundary{
		Sentinel:             InstantFinite,
		UnixTime:             i.UnixTime,
		WallGregorianSeconds: i.WallGregorianSeconds,
	}
	if keepWall {
		wall := i.Wall
		b.Wall = &wall
	}
	return b
}

// CompiledPeriod is the shrunk, storage-ready shape of a period: fields
// are renamed to match the public vocabulary, and boundary civil
// representations that can be reconstructed from neighboring periods are
// dropped.
type CompiledPeriod struct {
	Kind Type

	From, To Boundary
	Offsets  CompiledOffsets
	Abbr     string

	Before, After CompiledOffsets

	Rule     *Rule
	ZoneLine *ZoneLine
}

// Shrink converts a builder's ordered, earliest-first RawPeriod list into
// the reversed, storage-ready CompiledPeriod list that PeriodIndex
// searches: boundary civil fields are pruned to the two integer sorts
// except at the {min, max} sentinels and at a Gap's boundaries, fields
// are renamed, and the list is reversed so the most recent period comes
// first. PeriodIndex scans the whole list on every lookup, so it does not
// stop early on this order.
func Shrink(raw []RawPeriod) []CompiledPeriod {
	out := make([]CompiledPeriod, len(raw))
	for i, r := range raw {
		keepWall := r.Kind == Gap
		out[len(raw)-1-i] = CompiledPeriod{
			Kind:     r.Kind,
			From:     boundaryFromInstant(r.From, keepWall),
			To:       boundaryFromInstant(r.To, keepWall),
			Offsets:  r.Offsets.compiled(),
			Abbr:     r.Abbr,
			Before:   r.Before.compiled(),
			After:    r.After.compiled(),
			Rule:     r.Rule,
			ZoneLine: r.ZoneLine,
		}
	}
	return out
}
