// Package metrics registers the Prometheus collectors for classification,
// recommendation and quote outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmate_classifications_total",
			Help: "Mood classifications by the path that produced the preset (model or heuristic)",
		},
		[]string{"source"},
	)

	ResolverTiers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmate_resolver_tier_total",
			Help: "Recommendation tier attempts by tier and outcome (hit, empty, error)",
		},
		[]string{"tier", "outcome"},
	)

	Quotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmate_quotes_total",
			Help: "Quote generations by outcome (ok, empty, error)",
		},
		[]string{"outcome"},
	)

	CatalogRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmate_catalog_retries_total",
			Help: "Catalog HTTP retries by reason (status code or transport)",
		},
		[]string{"reason"},
	)
)
