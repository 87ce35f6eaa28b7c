package config

import (
	"fmt"
	"strings"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/services"
	"github.com/ewilliams-labs/moodmate/internal/validation"
)

// Validate checks field ranges and that every mood table override names a
// known bucket and forms a valid entry.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.PresetTable(); err != nil {
		return err
	}
	if _, err := c.QueryTable(); err != nil {
		return err
	}
	if _, err := c.KeywordRules(); err != nil {
		return err
	}
	return nil
}

// PresetTable returns the fallback presets with any overrides applied.
func (c *Config) PresetTable() (domain.PresetTable, error) {
	overrides := make(map[domain.Bucket]domain.PresetDefaults, len(c.Presets))
	for name, p := range c.Presets {
		b, err := domain.ParseBucket(name)
		if err != nil {
			return domain.PresetTable{}, fmt.Errorf("config: presets: %w", err)
		}
		overrides[b] = domain.PresetDefaults{Energy: p.Energy, Valence: p.Valence, SeedGenres: p.SeedGenres}
	}
	t, err := domain.NewPresetTable(overrides)
	if err != nil {
		return domain.PresetTable{}, fmt.Errorf("config: presets: %w", err)
	}
	return t, nil
}

// QueryTable returns the search queries with any overrides applied.
func (c *Config) QueryTable() (domain.QueryTable, error) {
	overrides := make(map[domain.Bucket]domain.MoodQuery, len(c.Queries))
	for name, q := range c.Queries {
		b, err := domain.ParseBucket(name)
		if err != nil {
			return domain.QueryTable{}, fmt.Errorf("config: queries: %w", err)
		}
		overrides[b] = domain.MoodQuery{ArtistQuery: q.ArtistQuery, TrackQuery: q.TrackQuery}
	}
	t, err := domain.NewQueryTable(overrides)
	if err != nil {
		return domain.QueryTable{}, fmt.Errorf("config: queries: %w", err)
	}
	return t, nil
}

// KeywordRules returns the configured heuristic rules in file order, or nil
// when the built-in rules apply.
func (c *Config) KeywordRules() ([]services.KeywordRule, error) {
	if len(c.Keywords) == 0 {
		return nil, nil
	}
	rules := make([]services.KeywordRule, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		b, err := domain.ParseBucket(kw.Bucket)
		if err != nil {
			return nil, fmt.Errorf("config: keywords: %w", err)
		}
		words := make([]string, 0, len(kw.Keywords))
		for _, w := range kw.Keywords {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				words = append(words, w)
			}
		}
		rules = append(rules, services.KeywordRule{Bucket: b, Keywords: words})
	}
	return rules, nil
}
