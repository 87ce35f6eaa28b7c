package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
)

// maxSeeds is the API's cap on the combined seed count.
const maxSeeds = 5

// Recommendations asks for tracks seeded by artists and steered by the optional
// energy and valence targets.
func (c *Client) Recommendations(ctx context.Context, rq ports.RecommendationQuery) ([]domain.CatalogTrack, error) {
	if len(rq.SeedArtists) == 0 {
		return nil, fmt.Errorf("spotify adapter: recommendations: no seed artists")
	}

	q := url.Values{}
	q.Set("seed_artists", strings.Join(rq.SeedArtists[:min(len(rq.SeedArtists), maxSeeds)], ","))
	q.Set("limit", strconv.Itoa(clampLimit(rq.Limit)))
	if rq.TargetEnergy != nil {
		q.Set("target_energy", strconv.FormatFloat(*rq.TargetEnergy, 'f', -1, 64))
	}
	if rq.TargetValence != nil {
		q.Set("target_valence", strconv.FormatFloat(*rq.TargetValence, 'f', -1, 64))
	}

	var body tracksResponse
	if err := c.getJSON(ctx, "/recommendations", q, &body); err != nil {
		return nil, err
	}
	return mapTracks(body.Tracks), nil
}
