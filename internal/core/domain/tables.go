package domain

import (
	"fmt"
	"slices"
)

// PresetDefaults is the canonical (energy, valence, seed genres) triple for a bucket.
type PresetDefaults struct {
	Energy     float64
	Valence    float64
	SeedGenres []string
}

// MoodQuery holds the catalog search strings used for a bucket.
type MoodQuery struct {
	ArtistQuery string
	TrackQuery  string
}

// PresetTable maps each bucket to its fallback preset. The zero value is not usable;
// build one with NewPresetTable or DefaultPresetTable.
type PresetTable struct {
	entries map[Bucket]PresetDefaults
}

// QueryTable maps each bucket to its search queries.
type QueryTable struct {
	entries map[Bucket]MoodQuery
}

// DefaultPresetTable returns the built-in fallback presets.
func DefaultPresetTable() PresetTable {
	return PresetTable{entries: map[Bucket]PresetDefaults{
		BucketFocus:    {Energy: 0.35, Valence: 0.4, SeedGenres: []string{"focus", "lofi", "classical"}},
		BucketEnergize: {Energy: 0.8, Valence: 0.7, SeedGenres: []string{"electronic", "pop", "dance"}},
		BucketCalm:     {Energy: 0.2, Valence: 0.5, SeedGenres: []string{"ambient", "acoustic", "chill"}},
	}}
}

// DefaultQueryTable returns the built-in search queries.
func DefaultQueryTable() QueryTable {
	return QueryTable{entries: map[Bucket]MoodQuery{
		BucketFocus:    {ArtistQuery: "lofi beats", TrackQuery: "lofi focus"},
		BucketEnergize: {ArtistQuery: "workout hits", TrackQuery: "energetic dance"},
		BucketCalm:     {ArtistQuery: "ambient chill", TrackQuery: "calm ambient"},
	}}
}

// NewPresetTable overlays overrides on the defaults. Every override must itself
// form a valid preset.
func NewPresetTable(overrides map[Bucket]PresetDefaults) (PresetTable, error) {
	table := DefaultPresetTable()
	for b, d := range overrides {
		if _, err := NewPreset(b, d.Energy, d.Valence, d.SeedGenres, SourceHeuristic); err != nil {
			return PresetTable{}, fmt.Errorf("domain: preset table entry %q: %w", b, err)
		}
		table.entries[b] = PresetDefaults{Energy: d.Energy, Valence: d.Valence, SeedGenres: slices.Clone(d.SeedGenres)}
	}
	return table, nil
}

// NewQueryTable overlays overrides on the defaults. Empty strings keep the default value.
func NewQueryTable(overrides map[Bucket]MoodQuery) (QueryTable, error) {
	table := DefaultQueryTable()
	for b, q := range overrides {
		if !b.Valid() {
			return QueryTable{}, fmt.Errorf("domain: query table entry: %w: %q", ErrUnknownBucket, b)
		}
		cur := table.entries[b]
		if q.ArtistQuery != "" {
			cur.ArtistQuery = q.ArtistQuery
		}
		if q.TrackQuery != "" {
			cur.TrackQuery = q.TrackQuery
		}
		table.entries[b] = cur
	}
	return table, nil
}

// Lookup returns the entry for b, or the focus entry when b is unknown.
func (t PresetTable) Lookup(b Bucket) PresetDefaults {
	entries := t.entries
	if entries == nil {
		entries = DefaultPresetTable().entries
	}
	d, ok := entries[b]
	if !ok {
		d = entries[BucketFocus]
	}
	d.SeedGenres = slices.Clone(d.SeedGenres)
	return d
}

// Preset builds a heuristic-sourced Preset for b from the table.
func (t PresetTable) Preset(b Bucket) Preset {
	if !b.Valid() {
		b = BucketFocus
	}
	d := t.Lookup(b)
	return Preset{
		bucket:     b,
		energy:     d.Energy,
		valence:    d.Valence,
		seedGenres: d.SeedGenres,
		source:     SourceHeuristic,
	}
}

// Lookup returns the queries for b, or the focus queries when b is unknown.
func (t QueryTable) Lookup(b Bucket) MoodQuery {
	entries := t.entries
	if entries == nil {
		entries = DefaultQueryTable().entries
	}
	if q, ok := entries[b]; ok {
		return q
	}
	return entries[BucketFocus]
}
