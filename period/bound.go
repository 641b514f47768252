// Package period builds and represents the per-zone timeline of local-clock
// behavior: an ordered list of regular periods plus the synthetic gap and
// overlap periods that mark where the clock jumps.
package period

import (
	"github.com/jorisvandenbos/tzengine/internal/calendar"
)

// BoundKind identifies which variant a Bound holds.
type BoundKind int

const (
	// BoundMin means the indefinite past.
	BoundMin BoundKind = iota
	// BoundMax means the indefinite future.
	BoundMax
	// BoundFinite means When/Modifier hold a concrete civil datetime.
	BoundFinite
)

// Bound is an unresolved zone-line or rule boundary: either one of the
// {min, max} sentinels, or a civil datetime tagged with the clock
// (wall/standard/UTC) it is expressed in. It is resolved into a
// BoundaryInstant once the enclosing zone line's offsets are known.
type Bound struct {
	Kind     BoundKind
	When     calendar.Civil
	Modifier calendar.Modifier
}

// MinBound returns the indefinite-past sentinel.
func MinBound() Bound { return Bound{Kind: BoundMin} }

// MaxBound returns the indefinite-future sentinel.
func MaxBound() Bound { return Bound{Kind: BoundMax} }

// FiniteBound returns a Bound for a concrete civil datetime expressed in
// the given clock.
func FiniteBound(c calendar.Civil, modifier calendar.Modifier) Bound {
	return Bound{Kind: BoundFinite, When: c, Modifier: modifier}
}

// IsMin reports whether b is the indefinite-past sentinel.
func (b Bound) IsMin() bool { return b.Kind == BoundMin }

// IsMax reports whether b is the indefinite-future sentinel.
func (b Bound) IsMax() bool { return b.Kind == BoundMax }
