package index

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/patrickmn/go-cache"

	"github.com/jorisvandenbos/tzengine/period"
	"github.com/jorisvandenbos/tzengine/rules"
	"github.com/jorisvandenbos/tzengine/tzdata"
)

// Extender rematerializes the open tail of a zone's period list for one
// concrete query year, by re-running PeriodBuilder against a tiny rule
// window centered on that year. Results are cached by (zone, year) for
// throughput; correctness never depends on the cache being warm.
type Extender struct {
	cache *cache.Cache
}

// NewExtender builds an Extender whose cached results expire after ttl,
// or never expire if ttl is zero.
func NewExtender(ttl time.Duration) *Extender {
	return &Extender{cache: cache.New(ttl, ttl*2)}
}

// Extend returns the short, uncompiled-but-shrunk period list covering
// year for the zone that first and second's raw rule templates belong
// to. first and second must be the zone's two chronologically last
// regular periods, as openEndedTail returns them: first runs to the
// indefinite future, second keeps its finite To, and both carry raw rule
// data.
func (e *Extender) Extend(zone string, first, second *period.CompiledPeriod, year int) ([]period.CompiledPeriod, error) {
	key := fmt.Sprintf("%s|%d", zone, year)
	if cached, ok := e.cache.Get(key); ok {
		return cached.([]period.CompiledPeriod), nil
	}

	if first.Rule == nil || second.Rule == nil || first.ZoneLine == nil {
		return nil, errors.Newf("index: zone %q open tail is missing raw rule data for extension", zone)
	}

	templates := dedupTemplates(first.Rule.Raw, second.Rule.Raw)
	resolver := rules.NewResolver(templates, rules.WindowForYear(year))

	raw, err := period.Build(zone, []period.ZoneLine{*first.ZoneLine}, resolver)
	if err != nil {
		return nil, err
	}
	compiled := period.Shrink(raw)

	e.cache.Set(key, compiled, cache.DefaultExpiration)
	return compiled, nil
}

func dedupTemplates(a, b tzdata.RuleLine) []tzdata.RuleLine {
	if a == b {
		return []tzdata.RuleLine{a}
	}
	return []tzdata.RuleLine{a, b}
}
