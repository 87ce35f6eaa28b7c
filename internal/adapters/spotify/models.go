package spotify

// Wire types mirror the Web API JSON. Optional values are pointers so an
// absent or null field stays distinguishable from an empty one. Some match the
// domain.Catalog* types field for field; they stay separate so API changes stop
// at mapper.go.

type spotifyImage struct {
	URL    *string `json:"url"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

type spotifyAlbum struct {
	Name   *string        `json:"name"`
	Images []spotifyImage `json:"images"`
}

// spotifyArtist is the simplified artist object found in tracks and searches.
type spotifyArtist struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

type spotifyTrack struct {
	ID           string            `json:"id"`
	Name         *string           `json:"name"`
	Artists      []spotifyArtist   `json:"artists"`
	Album        *spotifyAlbum     `json:"album"`
	PreviewURL   *string           `json:"preview_url"`
	ExternalURLs map[string]string `json:"external_urls"`
}

type searchResponse struct {
	Artists *struct {
		Items []*spotifyArtist `json:"items"`
	} `json:"artists"`
	Tracks *struct {
		Items []*spotifyTrack `json:"items"`
	} `json:"tracks"`
}

// tracksResponse is the envelope shared by /recommendations and /artists/{id}/top-tracks.
type tracksResponse struct {
	Tracks []*spotifyTrack `json:"tracks"`
}

type errorResponse struct {
	Error *struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}
