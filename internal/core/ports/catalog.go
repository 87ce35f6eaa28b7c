package ports

import (
	"context"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

// RecommendationQuery seeds a catalog-side recommendation request.
type RecommendationQuery struct {
	SeedArtists []string
	Limit       int
	// Target values are optional hints in [0,1]; nil leaves them unset.
	TargetEnergy  *float64
	TargetValence *float64
}

// Catalog is the subset of the music catalog API the resolver needs.
type Catalog interface {
	SearchArtists(ctx context.Context, query string, limit int) ([]domain.CatalogArtist, error)
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.CatalogTrack, error)
	Recommendations(ctx context.Context, q RecommendationQuery) ([]domain.CatalogTrack, error)
	ArtistTopTracks(ctx context.Context, artistID, market string) ([]domain.CatalogTrack, error)
}

// CatalogFactory builds a fresh catalog client. Implementations return
// domain.ErrMissingCredentials when the client cannot be configured.
type CatalogFactory func() (Catalog, error)
