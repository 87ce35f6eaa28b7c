package domain

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCatalogTrack_Pack(t *testing.T) {
	tests := []struct {
		name  string
		track CatalogTrack
		want  TrackRecord
	}{
		{
			name:  "all optional fields absent",
			track: CatalogTrack{},
			want:  TrackRecord{},
		},
		{
			name: "fully populated track",
			track: CatalogTrack{
				ID:   "t1",
				Name: strPtr("Weightless"),
				Artists: []CatalogArtist{
					{ID: "a1", Name: strPtr("Marconi Union")},
					{ID: "a2", Name: strPtr("Lyz Cooper")},
				},
				Album: &CatalogAlbum{
					Name: strPtr("Distance"),
					Images: []CatalogImage{
						{URL: strPtr("http://img.example/640.jpg")},
						{URL: strPtr("http://img.example/300.jpg")},
					},
				},
				PreviewURL:   strPtr("http://preview.example/t1.mp3"),
				ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/track/t1"},
			},
			want: TrackRecord{
				Title:      "Weightless",
				Artists:    "Marconi Union, Lyz Cooper",
				Album:      "Distance",
				PreviewURL: "http://preview.example/t1.mp3",
				SpotifyURL: "https://open.spotify.com/track/t1",
				AlbumImage: "http://img.example/640.jpg",
			},
		},
		{
			name: "album without images and artist without name",
			track: CatalogTrack{
				Name:    strPtr("Untitled"),
				Artists: []CatalogArtist{{ID: "a1"}, {ID: "a2", Name: strPtr("Known")}},
				Album:   &CatalogAlbum{Name: strPtr("Loose")},
			},
			want: TrackRecord{Title: "Untitled", Artists: "Known", Album: "Loose"},
		},
		{
			name: "first image without url is skipped",
			track: CatalogTrack{
				Album: &CatalogAlbum{Images: []CatalogImage{{}, {URL: strPtr("http://img.example/2.jpg")}}},
			},
			want: TrackRecord{AlbumImage: "http://img.example/2.jpg"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := tc.track.Pack()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Pack() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPackTracks_PreservesOrder(t *testing.T) {
	items := []CatalogTrack{{Name: strPtr("one")}, {Name: strPtr("two")}, {Name: strPtr("three")}}
	got := PackTracks(items)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"one", "two", "three"} {
		if got[i].Title != want {
			t.Fatalf("record %d: got %q, want %q", i, got[i].Title, want)
		}
	}
	if empty := PackTracks(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
