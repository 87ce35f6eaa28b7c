package domain

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

const (
	// MinSeedGenres and MaxSeedGenres bound the seed genre list of a Preset.
	MinSeedGenres = 1
	MaxSeedGenres = 5
)

// PresetSource records which classification path produced a Preset.
type PresetSource string

const (
	SourceModel     PresetSource = "model"
	SourceHeuristic PresetSource = "heuristic"
)

// Preset is the structured result of mood classification.
// It is immutable once constructed; accessors hand out copies.
type Preset struct {
	bucket     Bucket
	energy     float64
	valence    float64
	seedGenres []string
	source     PresetSource
}

// NewPreset validates its arguments and returns a Preset.
func NewPreset(bucket Bucket, energy, valence float64, seedGenres []string, source PresetSource) (Preset, error) {
	if !bucket.Valid() {
		return Preset{}, fmt.Errorf("domain: %w: %w: %q", ErrInvalidPreset, ErrUnknownBucket, bucket)
	}
	if !unitInterval(energy) {
		return Preset{}, fmt.Errorf("domain: %w: energy %v outside [0,1]", ErrInvalidPreset, energy)
	}
	if !unitInterval(valence) {
		return Preset{}, fmt.Errorf("domain: %w: valence %v outside [0,1]", ErrInvalidPreset, valence)
	}
	if n := len(seedGenres); n < MinSeedGenres || n > MaxSeedGenres {
		return Preset{}, fmt.Errorf("domain: %w: %d seed genres, want %d-%d", ErrInvalidPreset, n, MinSeedGenres, MaxSeedGenres)
	}
	return Preset{
		bucket:     bucket,
		energy:     energy,
		valence:    valence,
		seedGenres: slices.Clone(seedGenres),
		source:     source,
	}, nil
}

func (p Preset) Bucket() Bucket { return p.bucket }
func (p Preset) Energy() float64 { return p.energy }
func (p Preset) Valence() float64 { return p.valence }
func (p Preset) Source() PresetSource { return p.source }
func (p Preset) SeedGenres() []string { return slices.Clone(p.seedGenres) }
func (p Preset) IsZero() bool { return p.bucket == "" }

// Equal compares the classification fields, ignoring Source.
func (p Preset) Equal(other Preset) bool {
	return p.bucket == other.bucket &&
		p.energy == other.energy &&
		p.valence == other.valence &&
		slices.Equal(p.seedGenres, other.seedGenres)
}

type presetJSON struct {
	Bucket     Bucket       `json:"bucket"`
	Energy     float64      `json:"energy"`
	Valence    float64      `json:"valence"`
	SeedGenres []string     `json:"seed_genres"`
	Source     PresetSource `json:"source,omitempty"`
}

// MarshalJSON renders the preset with the same keys the model is asked to emit.
func (p Preset) MarshalJSON() ([]byte, error) {
	return json.Marshal(presetJSON{
		Bucket:     p.bucket,
		Energy:     p.energy,
		Valence:    p.valence,
		SeedGenres: p.seedGenres,
		Source:     p.source,
	})
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}
