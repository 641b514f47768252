package period

import "github.com/jorisvandenbos/tzengine/internal/calendar"

// InstantKind identifies which variant a BoundaryInstant holds.
type InstantKind int

const (
	// InstantMin means the indefinite past.
	InstantMin InstantKind = iota
	// InstantMax means the indefinite future.
	InstantMax
	// InstantFinite means the civil/unix/gregorian fields are populated.
	InstantFinite
)

// BoundaryInstant is a single instant resolved into all three civil
// representations plus the two integer sorts used by PeriodIndex, or one
// of the {min, max} sentinels.
type BoundaryInstant struct {
	Kind InstantKind

	Wall     calendar.Civil
	Standard calendar.Civil
	UTC      calendar.Civil

	UnixTime             int64
	WallGregorianSeconds int64
}

// MinInstant returns the indefinite-past sentinel.
func MinInstant() BoundaryInstant { return BoundaryInstant{Kind: InstantMin} }

// MaxInstant returns the indefinite-future sentinel.
func MaxInstant() BoundaryInstant { return BoundaryInstant{Kind: InstantMax} }

// IsMin reports whether i is the indefinite-past sentinel.
func (i BoundaryInstant) IsMin() bool { return i.Kind == InstantMin }

// IsMax reports whether i is the indefinite-future sentinel.
func (i BoundaryInstant) IsMax() bool { return i.Kind == InstantMax }

// IsFinite reports whether i carries concrete civil/unix/gregorian values.
func (i BoundaryInstant) IsFinite() bool { return i.Kind == InstantFinite }

// Resolve turns an unresolved Bound into a BoundaryInstant, given the
// standard and local offsets in effect around it.
func Resolve(b Bound, stdOffset, localOffset int) BoundaryInstant {
	switch b.Kind {
	case BoundMin:
		return MinInstant()
	case BoundMax:
		return MaxInstant()
	}

	wall := calendar.Convert(b.When, b.Modifier, calendar.Wall, stdOffset, localOffset)
	standard := calendar.Convert(b.When, b.Modifier, calendar.Standard, stdOffset, localOffset)
	utc := calendar.Convert(b.When, b.Modifier, calendar.UTC, stdOffset, localOffset)
	return BoundaryInstant{
		Kind:                 InstantFinite,
		Wall:                 wall,
		Standard:             standard,
		UTC:                  utc,
		UnixTime:             calendar.ToUnix(utc),
		WallGregorianSeconds: calendar.GregorianSeconds(wall),
	}
}
