package period

import (
	"math"

	"github.com/jorisvandenbos/tzengine/internal/calendar"
)

// Build walks a single zone's continuation chain of zone lines, in
// order, and assembles the ordered, earliest-first list of regular, gap,
// and overlap periods that describe its local-clock history. resolver
// supplies the concrete occurrences of any named rule set a zone line
// references.
func Build(zone string, lines []ZoneLine, resolver RuleSet) ([]RawPeriod, error) {
	var periods []RawPeriod
	var prev *RawPeriod

	for _, zl := range lines {
		var specs []activation
		switch zl.Rules.Kind {
		case ZoneLineRulesFixed:
			specs = []activation{{from: zl.From, to: zl.To, localOffset: zl.Rules.Offset}}
		case ZoneLineRulesNamed:
			occs, err := resolver.Resolve(zl.Rules.Name)
			if err != nil {
				return nil, NewStructuralError(zone, "resolving rule set "+zl.Rules.Name, err)
			}
			prevLocalOffset := 0
			if prev != nil {
				prevLocalOffset = prev.Offsets.LocalOffsetFromStd
			}
			specs = activationsForZoneLine(occs, zl, prevLocalOffset)
		}

		zlCopy := zl
		for _, spec := range specs {
			q := RawPeriod{
				Kind: Regular,
				Offsets: Offsets{
					StdOffsetFromUTC:   zl.StdOffset,
					LocalOffsetFromStd: spec.localOffset,
				},
				Abbr: formatAbbr(zl.Format, spec.localOffset, spec.letter),
			}
			q.From = computeFrom(prev, zl.From, spec.from, zl.StdOffset, spec.localOffset)
			q.To = Resolve(spec.to, zl.StdOffset, spec.localOffset)

			if err := checkBoundaryCoincidence(zone, prev, q.From); err != nil {
				return nil, err
			}
			if err := checkNonDegenerate(zone, q); err != nil {
				return nil, err
			}

			if synth, ok := synthesize(prev, q); ok {
				periods = append(periods, synth)
			}

			if (q.To.IsMax() || spec.tailMember) && spec.raw != nil {
				q.Rule = spec.raw
				q.ZoneLine = &zlCopy
			}
			periods = append(periods, q)
			prev = &periods[len(periods)-1]
		}
	}

	return periods, nil
}

// activation is one resolved, trimmed rule occurrence (or a synthetic
// standard-time filler) ready to be turned into a RawPeriod by Build.
type activation struct {
	from, to    Bound
	localOffset int
	letter      string

	// raw is the originating occurrence, set only when this activation
	// came from a real rule rather than left-pad filler.
	raw *Rule

	// tailMember is set by markOpenEndedTail on the (up to) two trailing
	// activations of a zone's still-open chain, so Build attaches Rule
	// and ZoneLine to both even though only the very last one's to is
	// actually :max.
	tailMember bool
}

// activationsForZoneLine filters a rule set's chronologically ordered
// occurrences down to the ones applicable to zl, chains each kept
// occurrence's end to the next one's start, and pads or trims the ends
// of the resulting list to exactly cover zl's own span.
//
// prevLocalOffset is the local offset in effect immediately before zl
// starts: the previous period's local_offset, or 0 for a zone's first
// line. zl.From is always resolved through it. Every other boundary —
// a rule occurrence's own from/to, and zl.To when trimming against a
// particular occurrence — is resolved through that occurrence's own
// local offset instead. Most UNTIL and AT columns are wall-clock, so
// resolving them with a fixed local offset of 0 would land on the
// wrong UTC instant whenever DST is active at the boundary being
// compared; threading the contextually correct offset through keeps
// every comparison anchored to the instant the tzdata text actually
// names.
func activationsForZoneLine(occs []Rule, zl ZoneLine, prevLocalOffset int) []activation {
	chained := make([]activation, len(occs))
	for i, occ := range occs {
		to := MaxBound()
		if i+1 < len(occs) {
			to = occs[i+1].From
		}
		chained[i] = activation{from: occ.From, to: to, localOffset: occ.LocalOffset, letter: occ.Letter, raw: &occs[i]}
	}

	zlFrom := boundUnix(zl.From, zl.StdOffset, prevLocalOffset)

	var kept []activation
	runningLocal := prevLocalOffset
	for _, a := range chained {
		aFrom := boundUnix(a.from, zl.StdOffset, runningLocal)
		aTo := boundUnix(a.to, zl.StdOffset, a.localOffset)
		zlTo := boundUnix(zl.To, zl.StdOffset, a.localOffset)
		if aTo > zlFrom && aFrom < zlTo {
			kept = append(kept, a)
			runningLocal = a.localOffset
		}
	}

	if len(kept) == 0 {
		return []activation{{from: zl.From, to: zl.To, localOffset: 0}}
	}

	first := kept[0]
	if boundUnix(first.from, zl.StdOffset, first.localOffset) > zlFrom {
		letter := ""
		if zl.From.IsMin() {
			letter = letterOfFirstZeroOffsetRule(occs)
		}
		pad := activation{from: zl.From, to: first.from, localOffset: 0, letter: letter}
		kept = append([]activation{pad}, kept...)
	} else {
		kept[0].from = zl.From
	}

	last := len(kept) - 1
	if !zl.To.IsMax() {
		zlToForLast := boundUnix(zl.To, zl.StdOffset, kept[last].localOffset)
		lastTo := boundUnix(kept[last].to, zl.StdOffset, kept[last].localOffset)
		if kept[last].to.IsMax() || lastTo > zlToForLast {
			kept[last].to = zl.To
		}
	} else {
		markOpenEndedTail(kept)
	}

	return kept
}

// markOpenEndedTail flags the trailing activations of a zone line's own
// still-open chain (zl.To = :max) as tail members whenever they were
// expanded from a perpetual rule template, so Build attaches Rule and
// ZoneLine to both even though the chaining step already gave only the
// very last one a genuinely open-ended to. It only considers the last
// two slots, matching the "two chronologically last periods" tail
// PeriodIndex looks for before invoking DynamicExtender: it never
// rewrites an activation's own to, since doing so would make the
// second-to-last period also claim every instant from its start to the
// indefinite future, overlapping the period that actually follows it.
func markOpenEndedTail(kept []activation) {
	for i := len(kept) - 1; i >= 0 && i >= len(kept)-2; i-- {
		if kept[i].raw != nil && kept[i].raw.Perpetual {
			kept[i].tailMember = true
		}
	}
}

func letterOfFirstZeroOffsetRule(occs []Rule) string {
	for _, o := range occs {
		if o.LocalOffset == 0 {
			return o.Letter
		}
	}
	return ""
}

// boundUnix resolves a Bound to its unix-time position for comparison
// purposes, using math.MinInt64/MaxInt64 for the {min, max} sentinels.
func boundUnix(b Bound, stdOffset, localOffset int) int64 {
	switch b.Kind {
	case BoundMin:
		return math.MinInt64
	case BoundMax:
		return math.MaxInt64
	default:
		return Resolve(b, stdOffset, localOffset).UnixTime
	}
}

// computeFrom implements §4.5's three cases for a period's From
// boundary: the very first period of a build, a period following a
// terminal (:max) period — only possible when Build is re-entered on a
// single synthetic zone line, as DynamicExtender does — and the general
// case, which reconverts the previous period's wall clock through the
// offset change to land on the same UTC instant.
func computeFrom(prev *RawPeriod, zoneLineFrom, ruleFrom Bound, std, local int) BoundaryInstant {
	if prev == nil {
		return Resolve(zoneLineFrom, std, 0)
	}
	if prev.To.IsMax() {
		return Resolve(ruleFrom, std, prev.Offsets.LocalOffsetFromStd)
	}
	diff := (std + local) - prev.Offsets.Total()
	wall := calendar.AddSeconds(prev.To.Wall, int64(diff))
	return Resolve(FiniteBound(wall, calendar.Wall), std, local)
}

// synthesize returns the Gap or Overlap period, if any, that belongs
// between prev and q.
func synthesize(prev *RawPeriod, q RawPeriod) (RawPeriod, bool) {
	if prev == nil || prev.To.IsMax() {
		return RawPeriod{}, false
	}
	diff := q.Offsets.Total() - prev.Offsets.Total()
	switch {
	case diff > 0:
		return RawPeriod{Kind: Gap, From: prev.To, To: q.From, Before: prev.Offsets, After: q.Offsets}, true
	case diff < 0:
		return RawPeriod{Kind: Overlap, From: q.From, To: prev.To}, true
	default:
		return RawPeriod{}, false
	}
}

func checkBoundaryCoincidence(zone string, prev *RawPeriod, from BoundaryInstant) error {
	if prev == nil || prev.To.IsMax() || from.IsMin() {
		return nil
	}
	if prev.To.UnixTime != from.UnixTime {
		return NewStructuralError(zone, "non-coincident boundary between adjacent periods", nil)
	}
	return nil
}

func checkNonDegenerate(zone string, q RawPeriod) error {
	if q.From.IsMin() || q.To.IsMax() {
		return nil
	}
	if q.From.UnixTime == q.To.UnixTime {
		return NewStructuralError(zone, "degenerate period with equal endpoints", nil)
	}
	return nil
}
