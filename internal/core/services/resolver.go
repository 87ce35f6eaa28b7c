package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
	"github.com/ewilliams-labs/moodmate/internal/logging"
	"github.com/ewilliams-labs/moodmate/internal/metrics"
)

const (
	// DefaultLimit is used when the caller asks for fewer than one track.
	DefaultLimit = 10
	// MaxLimit is the largest page the catalog serves in one call.
	MaxLimit = 50
	// DefaultMarket is the reference market for top-track lookups.
	DefaultMarket = "US"

	defaultSeedArtists = 3
	minSeedArtists     = 1
	maxSeedArtists     = 5
	artistSearchLimit  = 10
	topTrackArtists    = 5
	topTracksPerArtist = 10
	topTracksTarget    = 20
)

type tier string

const (
	tierSeeded    tier = "seeded"
	tierTopTracks tier = "top_tracks"
	tierSearch    tier = "search"
)

var errNoSeedArtists = errors.New("no seed artists found")

// Resolver turns a bucket and mood scores into track records by walking an
// ordered ladder of catalog strategies. The first one that yields tracks wins.
type Resolver struct {
	catalog     ports.Catalog
	queries     domain.QueryTable
	seedArtists int
	market      string
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithQueryTable replaces the per-bucket search queries.
func WithQueryTable(t domain.QueryTable) ResolverOption {
	return func(r *Resolver) { r.queries = t }
}

// WithSeedArtists sets how many artists seed tier 1. Values are clamped to 1-5.
func WithSeedArtists(n int) ResolverOption {
	return func(r *Resolver) { r.seedArtists = clampSeedArtists(n) }
}

// WithMarket sets the top-tracks market.
func WithMarket(market string) ResolverOption {
	return func(r *Resolver) {
		if market != "" {
			r.market = market
		}
	}
}

// NewResolver constructs a Resolver bound to one catalog client.
func NewResolver(catalog ports.Catalog, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		catalog:     catalog,
		queries:     domain.DefaultQueryTable(),
		seedArtists: defaultSeedArtists,
		market:      DefaultMarket,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend never fails. Catalog errors are logged and the next tier is tried;
// when every tier comes back empty the result is an empty, non-nil slice.
func (r *Resolver) Recommend(ctx context.Context, bucket domain.Bucket, energy, valence float64, limit int) []domain.TrackRecord {
	limit = normalizeLimit(limit)
	queries := r.queries.Lookup(bucket)
	log := logging.Ctx(ctx).With().Str("bucket", bucket.String()).Logger()
	log.Info().
		Float64("energy", energy).
		Float64("valence", valence).
		Int("limit", limit).
		Msg("resolver: resolving recommendations")

	seeds, items, err := r.seeded(ctx, queries, energy, valence, limit)
	if settle(&log, tierSeeded, items, err) {
		return packLimit(items, limit)
	}

	items, err = r.topTracks(ctx, queries, seeds)
	if settle(&log, tierTopTracks, items, err) {
		return packLimit(items, limit)
	}

	items, err = r.search(ctx, queries, limit)
	if settle(&log, tierSearch, items, err) {
		return packLimit(items, limit)
	}

	return []domain.TrackRecord{}
}

// seeded is tier 1. The seeds it found are returned even when the
// recommendation call fails, so tier 2 can reuse them.
func (r *Resolver) seeded(ctx context.Context, q domain.MoodQuery, energy, valence float64, limit int) ([]string, []domain.CatalogTrack, error) {
	seeds, err := r.findSeedArtists(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	if len(seeds) == 0 {
		return nil, nil, errNoSeedArtists
	}

	items, err := r.catalog.Recommendations(ctx, ports.RecommendationQuery{
		SeedArtists:   seeds,
		Limit:         limit,
		TargetEnergy:  unitOrNil(energy),
		TargetValence: unitOrNil(valence),
	})
	if err != nil {
		return seeds, nil, fmt.Errorf("recommendations: %w", err)
	}
	return seeds, items, nil
}

// topTracks is tier 2. An empty seed list, whether tier 1 found nothing or
// never got that far, triggers a fresh artist search.
func (r *Resolver) topTracks(ctx context.Context, q domain.MoodQuery, seeds []string) ([]domain.CatalogTrack, error) {
	if len(seeds) == 0 {
		var err error
		seeds, err = r.findSeedArtists(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(seeds) == 0 {
			return nil, errNoSeedArtists
		}
	}

	var acc []domain.CatalogTrack
	for _, id := range seeds[:min(len(seeds), topTrackArtists)] {
		tracks, err := r.catalog.ArtistTopTracks(ctx, id, r.market)
		if err != nil {
			return nil, fmt.Errorf("top tracks for artist %s: %w", id, err)
		}
		acc = append(acc, tracks[:min(len(tracks), topTracksPerArtist)]...)
		if len(acc) >= topTracksTarget {
			break
		}
	}
	return acc, nil
}

// search is tier 3.
func (r *Resolver) search(ctx context.Context, q domain.MoodQuery, limit int) ([]domain.CatalogTrack, error) {
	items, err := r.catalog.SearchTracks(ctx, q.TrackQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("track search: %w", err)
	}
	return items, nil
}

func (r *Resolver) findSeedArtists(ctx context.Context, q domain.MoodQuery) ([]string, error) {
	artists, err := r.catalog.SearchArtists(ctx, q.ArtistQuery, artistSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("artist search: %w", err)
	}

	ids := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.ID != "" {
			ids = append(ids, a.ID)
		}
	}
	return ids[:min(len(ids), r.seedArtists)], nil
}

// settle logs and counts a tier outcome and reports whether it produced tracks.
func settle(log *zerolog.Logger, t tier, items []domain.CatalogTrack, err error) bool {
	level := zerolog.WarnLevel
	if t == tierSearch {
		level = zerolog.ErrorLevel
	}

	switch {
	case errors.Is(err, errNoSeedArtists):
		metrics.ResolverTiers.WithLabelValues(string(t), "empty").Inc()
		log.WithLevel(level).Str("tier", string(t)).Msg("resolver: no seed artists found via search")
		return false
	case err != nil:
		metrics.ResolverTiers.WithLabelValues(string(t), "error").Inc()
		log.WithLevel(level).Err(err).Str("tier", string(t)).Msg("resolver: tier failed")
		return false
	case len(items) == 0:
		metrics.ResolverTiers.WithLabelValues(string(t), "empty").Inc()
		log.WithLevel(level).Str("tier", string(t)).Msg("resolver: tier returned no tracks")
		return false
	}

	metrics.ResolverTiers.WithLabelValues(string(t), "hit").Inc()
	log.Info().Str("tier", string(t)).Int("tracks", len(items)).Msg("resolver: tier produced tracks")
	return true
}

func packLimit(items []domain.CatalogTrack, limit int) []domain.TrackRecord {
	return domain.PackTracks(items[:min(len(items), limit)])
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}

func clampSeedArtists(n int) int {
	return max(minSeedArtists, min(n, maxSeedArtists))
}

func unitOrNil(v float64) *float64 {
	if v < 0 || v > 1 {
		return nil
	}
	return &v
}
