package period

import "github.com/cockroachdb/errors"

// StructuralError reports that a zone's rule and zone-line data could not
// be assembled into a consistent period list: an invariant the builder
// depends on (chronological ordering, non-overlapping continuation
// ranges, a resolvable rule reference) did not hold.
type StructuralError struct {
	Zone   string
	Reason string
	Cause  error
}

func (e *StructuralError) Error() string {
	if e.Cause != nil {
		return errors.Wrapf(e.Cause, "period: zone %q: %s", e.Zone, e.Reason).Error()
	}
	return errors.Newf("period: zone %q: %s", e.Zone, e.Reason).Error()
}

func (e *StructuralError) Unwrap() error { return e.Cause }

// NewStructuralError builds a StructuralError, wrapping cause if given.
func NewStructuralError(zone, reason string, cause error) *StructuralError {
	return &StructuralError{Zone: zone, Reason: reason, Cause: cause}
}

// ZoneNotFoundError reports a lookup against a zone name the index has no
// data for, distinct from a StructuralError because it is a normal,
// expected outcome rather than a data-consistency failure.
type ZoneNotFoundError struct {
	Zone string
}

func (e *ZoneNotFoundError) Error() string {
	return errors.Newf("period: zone %q not found", e.Zone).Error()
}

// NewZoneNotFoundError builds a ZoneNotFoundError for the given zone name.
func NewZoneNotFoundError(zone string) *ZoneNotFoundError {
	return &ZoneNotFoundError{Zone: zone}
}
