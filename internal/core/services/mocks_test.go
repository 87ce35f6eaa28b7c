package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
)

var errCatalog = errors.New("catalog unavailable")

// mockChat replies with a fixed content or error and records requests.
type mockChat struct {
	content  string
	err      error
	requests []ports.ChatRequest
}

func (m *mockChat) Chat(_ context.Context, req ports.ChatRequest) (string, error) {
	m.requests = append(m.requests, req)
	return m.content, m.err
}

// mockCatalog serves canned results per endpoint and counts calls.
type mockCatalog struct {
	artists    []domain.CatalogArtist
	artistsErr error

	recs    []domain.CatalogTrack
	recsErr error

	// topTracks is keyed by artist id.
	topTracks    map[string][]domain.CatalogTrack
	topTracksErr error

	search    []domain.CatalogTrack
	searchErr error

	artistCalls    int
	recsCalls      int
	topTracksCalls int
	searchCalls    int

	lastRecQuery    ports.RecommendationQuery
	lastSearchLimit int
	lastMarket      string
	lastArtistQuery string
	lastTrackQuery  string
	topTrackIDs     []string
}

func (m *mockCatalog) SearchArtists(_ context.Context, query string, _ int) ([]domain.CatalogArtist, error) {
	m.artistCalls++
	m.lastArtistQuery = query
	return m.artists, m.artistsErr
}

func (m *mockCatalog) SearchTracks(_ context.Context, query string, limit int) ([]domain.CatalogTrack, error) {
	m.searchCalls++
	m.lastSearchLimit = limit
	m.lastTrackQuery = query
	return m.search, m.searchErr
}

func (m *mockCatalog) Recommendations(_ context.Context, q ports.RecommendationQuery) ([]domain.CatalogTrack, error) {
	m.recsCalls++
	m.lastRecQuery = q
	return m.recs, m.recsErr
}

func (m *mockCatalog) ArtistTopTracks(_ context.Context, artistID, market string) ([]domain.CatalogTrack, error) {
	m.topTracksCalls++
	m.lastMarket = market
	m.topTrackIDs = append(m.topTrackIDs, artistID)
	if m.topTracksErr != nil {
		return nil, m.topTracksErr
	}
	return m.topTracks[artistID], nil
}

func strPtr(s string) *string { return &s }

func artists(ids ...string) []domain.CatalogArtist {
	out := make([]domain.CatalogArtist, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.CatalogArtist{ID: id, Name: strPtr("artist " + id)})
	}
	return out
}

// tracks returns n tracks named prefix-0, prefix-1, ...
func tracks(prefix string, n int) []domain.CatalogTrack {
	out := make([]domain.CatalogTrack, 0, n)
	for i := 0; i < n; i++ {
		name := prefix + "-" + strconv.Itoa(i)
		out = append(out, domain.CatalogTrack{ID: name, Name: strPtr(name)})
	}
	return out
}
