package domain

import "strings"

// TrackRecord is the normalized, display-ready representation of a recommended song.
type TrackRecord struct {
	Title      string `json:"title"`
	Artists    string `json:"artists"` // comma-joined display names
	Album      string `json:"album"`
	PreviewURL string `json:"preview_url,omitempty"` // optional
	SpotifyURL string `json:"spotify_url,omitempty"` // optional
	AlbumImage string `json:"album_image,omitempty"` // optional
}

// CatalogTrack is a track as decoded from the catalog API. Any nested value may
// be missing, so every field is optional.
type CatalogTrack struct {
	ID           string            `json:"id"`
	Name         *string           `json:"name"`
	Artists      []CatalogArtist   `json:"artists"`
	Album        *CatalogAlbum     `json:"album"`
	PreviewURL   *string           `json:"preview_url"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// CatalogArtist is an artist reference in a catalog response.
type CatalogArtist struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// CatalogAlbum is the album section of a catalog track.
type CatalogAlbum struct {
	Name   *string        `json:"name"`
	Images []CatalogImage `json:"images"`
}

// CatalogImage is a single artwork rendition.
type CatalogImage struct {
	URL    *string `json:"url"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

// Pack converts a raw catalog track into a TrackRecord. Missing values become
// empty strings; Pack never panics on a partially populated track.
func (t CatalogTrack) Pack() TrackRecord {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		if n := deref(a.Name); n != "" {
			names = append(names, n)
		}
	}

	rec := TrackRecord{
		Title:      deref(t.Name),
		Artists:    strings.Join(names, ", "),
		PreviewURL: deref(t.PreviewURL),
		SpotifyURL: t.ExternalURLs["spotify"],
	}

	if t.Album != nil {
		rec.Album = deref(t.Album.Name)
		for _, img := range t.Album.Images {
			if u := deref(img.URL); u != "" {
				rec.AlbumImage = u
				break
			}
		}
	}

	return rec
}

// PackTracks packs every track in order.
func PackTracks(items []CatalogTrack) []TrackRecord {
	out := make([]TrackRecord, 0, len(items))
	for _, t := range items {
		out = append(out, t.Pack())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
