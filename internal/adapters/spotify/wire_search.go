package spotify

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

// SearchArtists runs a free-text artist search and returns up to limit artists
// in relevance order.
func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]domain.CatalogArtist, error) {
	var body searchResponse
	if err := c.getJSON(ctx, "/search", searchQuery(query, "artist", limit), &body); err != nil {
		return nil, err
	}
	if body.Artists == nil {
		return []domain.CatalogArtist{}, nil
	}
	return mapArtists(body.Artists.Items), nil
}

// SearchTracks runs a free-text track search and returns up to limit tracks.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.CatalogTrack, error) {
	var body searchResponse
	if err := c.getJSON(ctx, "/search", searchQuery(query, "track", limit), &body); err != nil {
		return nil, err
	}
	if body.Tracks == nil {
		return []domain.CatalogTrack{}, nil
	}
	return mapTracks(body.Tracks.Items), nil
}

func searchQuery(q, kind string, limit int) url.Values {
	v := url.Values{}
	v.Set("q", q)
	v.Set("type", kind)
	v.Set("limit", strconv.Itoa(clampLimit(limit)))
	return v
}

// clampLimit keeps limit inside the 1-50 page size the API accepts.
func clampLimit(limit int) int {
	return max(1, min(limit, 50))
}
