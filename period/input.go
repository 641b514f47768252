package period

import "github.com/jorisvandenbos/tzengine/tzdata"

// ZoneLineRulesKind identifies how a ZoneLine's Rules field should be
// interpreted: a fixed literal offset, or a reference to a named rule set.
type ZoneLineRulesKind int

const (
	// ZoneLineRulesFixed means Rules.Offset is a fixed local offset from
	// standard time, in seconds; no named rule set applies.
	ZoneLineRulesFixed ZoneLineRulesKind = iota
	// ZoneLineRulesNamed means Rules.Name references a rule set that the
	// RuleSet resolver must expand into an ordered Rule list.
	ZoneLineRulesNamed
)

// ZoneLineRules is the builder's view of a zone line's RULES column: either
// a fixed offset, or a name to resolve against a RuleSet resolver.
type ZoneLineRules struct {
	Kind   ZoneLineRulesKind
	Offset int // seconds; valid when Kind == ZoneLineRulesFixed
	Name   string
}

// ZoneLine is one continuous epoch of a zone, in the builder's own shape,
// decoupled from the tzdata package's parse representation.
type ZoneLine struct {
	StdOffset int // seconds east of UTC, ignoring DST
	Rules     ZoneLineRules
	Format    string // abbreviation template, may contain %s or a std/dst slash
	From, To  Bound
}

// Rule is one resolved, non-recurring rule occurrence: the result of the
// RuleSet resolver expanding a named rule set's recurring templates into
// concrete activations. Its From bound marks where it takes effect; how
// long it stays in effect is determined by whichever occurrence, from any
// template sharing the zone line's rule name, activates next.
type Rule struct {
	From        Bound
	LocalOffset int // seconds added to standard time while the rule is in effect
	Letter      string
	Name        string

	// Perpetual reports that the rule template this occurrence was
	// expanded from has no TO year (tzdata.MaxYear), so a query past the
	// expansion window this occurrence was produced for may need the
	// rule set re-expanded for a later window to find the next
	// occurrence.
	Perpetual bool

	// Raw is the original, unexpanded rule template this occurrence was
	// derived from. It is retained only so DynamicExtender can re-expand
	// it for a different query year. Left-padding filler (§4.4) is not
	// a Rule and carries no Raw template.
	Raw tzdata.RuleLine
}

// RuleSet resolves a zone line's named RULES reference into an ordered
// list of concrete rule occurrences, or reports that no such rule set
// exists.
type RuleSet interface {
	Resolve(name string) ([]Rule, error)
}
