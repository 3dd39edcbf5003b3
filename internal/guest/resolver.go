package guest

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var guestLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "guest_lookups_total",
		Help: "Guest name resolutions by outcome.",
	},
	[]string{"outcome"}, // resolved | unknown | legacy | error | none
)

func init() {
	prometheus.MustRegister(guestLookups)
}

// Strategy derives a guest name from query parameters. It either decides the
// outcome (possibly "no name") or reports no opinion so the next strategy in
// line runs.
type Strategy interface {
	Resolve(ctx context.Context, params url.Values) (name string, decided bool)
}

// Resolver evaluates an ordered list of strategies: the invitation-code
// lookup first, then the legacy underscore-delimited parameter. When no
// strategy decides, the page renders without a greeting.
//
// Resolution never fails: network and parse errors degrade to "no name".
type Resolver struct {
	strategies []Strategy
}

// NewResolver builds the production strategy chain for the published table at
// listURL. fetchTimeout caps the remote fetch so a hung data source cannot
// stall guest-aware rendering.
func NewResolver(listURL string, fetchTimeout time.Duration) *Resolver {
	table := &Table{
		URL:    listURL,
		Client: &http.Client{Timeout: fetchTimeout},
	}
	return &Resolver{
		strategies: []Strategy{
			&CodeStrategy{Table: table, Timeout: fetchTimeout},
			LegacyStrategy{},
		},
	}
}

// NewResolverWith builds a Resolver over an explicit strategy chain.
// Intended for tests and future alternate sources.
func NewResolverWith(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Resolve runs the strategy chain and returns the guest name, if any.
func (r *Resolver) Resolve(ctx context.Context, params url.Values) (string, bool) {
	for _, s := range r.strategies {
		if name, decided := s.Resolve(ctx, params); decided {
			if name == "" {
				return "", false
			}
			return name, true
		}
	}
	guestLookups.WithLabelValues("none").Inc()
	return "", false
}

// CodeStrategy resolves an invitation code against the published table.
//
// It accepts several capitalization variants of the parameter name because
// shared links get retyped by hand. When a code is present this strategy
// always decides: a failed lookup means "no greeting", never a fall-through
// to the legacy parameter.
type CodeStrategy struct {
	Table   *Table
	Timeout time.Duration
}

// codeParams lists accepted spellings of the invitation-code parameter.
var codeParams = []string{"kode", "Kode", "KODE"}

// Resolve looks up the normalized code. Fetch or parse failures are logged
// and degrade to a decided empty name.
func (s *CodeStrategy) Resolve(ctx context.Context, params url.Values) (string, bool) {
	var raw string
	for _, k := range codeParams {
		if v := strings.TrimSpace(params.Get(k)); v != "" {
			raw = v
			break
		}
	}
	if raw == "" {
		return "", false
	}

	code := NormalizeCode(raw)

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	name, err := s.Table.Lookup(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("code", code).Msg("guest table lookup failed")
		guestLookups.WithLabelValues("error").Inc()
		return "", true
	}
	if name == "" {
		guestLookups.WithLabelValues("unknown").Inc()
		return "", true
	}
	guestLookups.WithLabelValues("resolved").Inc()
	return name, true
}

// LegacyStrategy handles links minted before invitation codes existed:
// ?to=Budi_Santoso carries the display name directly, underscores for spaces.
// It needs no network access and resolves synchronously.
type LegacyStrategy struct{}

// Resolve reconstructs the name from the "to" parameter, if present.
func (LegacyStrategy) Resolve(_ context.Context, params url.Values) (string, bool) {
	to := strings.TrimSpace(params.Get("to"))
	if to == "" {
		return "", false
	}
	guestLookups.WithLabelValues("legacy").Inc()
	return strings.ReplaceAll(to, "_", " "), true
}
