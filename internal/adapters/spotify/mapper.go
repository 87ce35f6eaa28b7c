package spotify

import (
	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

// mapTrackToDomain copies a wire track into the catalog record the core packs.
func mapTrackToDomain(st spotifyTrack) domain.CatalogTrack {
	dt := domain.CatalogTrack{
		ID:           st.ID,
		Name:         st.Name,
		PreviewURL:   st.PreviewURL,
		ExternalURLs: st.ExternalURLs,
	}
	if len(st.Artists) > 0 {
		dt.Artists = make([]domain.CatalogArtist, 0, len(st.Artists))
		for _, a := range st.Artists {
			dt.Artists = append(dt.Artists, mapArtistToDomain(a))
		}
	}
	if st.Album != nil {
		album := &domain.CatalogAlbum{Name: st.Album.Name}
		for _, img := range st.Album.Images {
			album.Images = append(album.Images, domain.CatalogImage{URL: img.URL, Width: img.Width, Height: img.Height})
		}
		dt.Album = album
	}
	return dt
}

func mapArtistToDomain(sa spotifyArtist) domain.CatalogArtist {
	return domain.CatalogArtist{ID: sa.ID, Name: sa.Name}
}

// mapTracks drops null entries, which the API uses for unavailable tracks.
func mapTracks(items []*spotifyTrack) []domain.CatalogTrack {
	out := make([]domain.CatalogTrack, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		out = append(out, mapTrackToDomain(*it))
	}
	return out
}

func mapArtists(items []*spotifyArtist) []domain.CatalogArtist {
	out := make([]domain.CatalogArtist, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		out = append(out, mapArtistToDomain(*it))
	}
	return out
}
