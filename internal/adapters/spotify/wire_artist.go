package spotify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

// ArtistTopTracks returns an artist's most popular tracks in market. The API
// returns at most 10.
func (c *Client) ArtistTopTracks(ctx context.Context, artistID, market string) ([]domain.CatalogTrack, error) {
	if artistID == "" {
		return nil, fmt.Errorf("spotify adapter: top tracks: empty artist id")
	}
	q := url.Values{}
	if market != "" {
		q.Set("market", market)
	}

	var body tracksResponse
	if err := c.getJSON(ctx, "/artists/"+url.PathEscape(artistID)+"/top-tracks", q, &body); err != nil {
		return nil, err
	}
	return mapTracks(body.Tracks), nil
}
