package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
	"github.com/ewilliams-labs/moodmate/internal/logging"
	"github.com/ewilliams-labs/moodmate/internal/metrics"
	"github.com/ewilliams-labs/moodmate/internal/validation"
)

// DefaultTemperature keeps structured output close to deterministic.
const DefaultTemperature = 0.3

var errEmptyCompletion = errors.New("empty completion")

// Classifier turns free text into a Preset. It asks the chat model first and
// falls back to keyword rules when the model cannot be used.
type Classifier struct {
	model       ports.ChatModel
	presets     domain.PresetTable
	rules       []KeywordRule
	temperature float64
}

// ClassifierOption customizes a Classifier.
type ClassifierOption func(*Classifier)

// WithPresetTable replaces the fallback preset table.
func WithPresetTable(t domain.PresetTable) ClassifierOption {
	return func(c *Classifier) { c.presets = t }
}

// WithKeywordRules replaces the ordered heuristic rules.
func WithKeywordRules(rules []KeywordRule) ClassifierOption {
	return func(c *Classifier) {
		if len(rules) > 0 {
			c.rules = rules
		}
	}
}

// WithClassifierTemperature overrides DefaultTemperature.
func WithClassifierTemperature(t float64) ClassifierOption {
	return func(c *Classifier) { c.temperature = t }
}

// NewClassifier constructs a Classifier.
func NewClassifier(model ports.ChatModel, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		model:       model,
		presets:     domain.DefaultPresetTable(),
		rules:       DefaultKeywordRules(),
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify always returns a valid Preset. Any transport, parse or schema
// failure from the model is logged and answered by the keyword heuristic.
func (c *Classifier) Classify(ctx context.Context, text, model string) domain.Preset {
	preset, err := c.classifyWithModel(ctx, text, model)
	if err == nil {
		metrics.Classifications.WithLabelValues(string(domain.SourceModel)).Inc()
		return preset
	}

	bucket := MatchBucket(c.rules, text)
	logging.Ctx(ctx).Warn().
		Err(err).
		Str("bucket", bucket.String()).
		Msg("classifier: model preset unusable, falling back to keyword heuristic")
	metrics.Classifications.WithLabelValues(string(domain.SourceHeuristic)).Inc()
	return c.presets.Preset(bucket)
}

func (c *Classifier) classifyWithModel(ctx context.Context, text, model string) (domain.Preset, error) {
	if c.model == nil {
		return domain.Preset{}, errors.New("classifier: no chat model configured")
	}

	content, err := c.model.Chat(ctx, ports.ChatRequest{
		Model:       model,
		Messages:    presetMessages(text),
		Temperature: c.temperature,
		JSON:        true,
	})
	if err != nil {
		return domain.Preset{}, fmt.Errorf("classifier: chat: %w", err)
	}

	return ParsePreset(content)
}

// presetPayload mirrors the JSON the model is asked for. Pointers tell a
// missing key apart from a zero value.
type presetPayload struct {
	Bucket     *string  `json:"bucket" validate:"required,oneof=focus energize calm"`
	Energy     *float64 `json:"energy" validate:"required,gte=0,lte=1"`
	Valence    *float64 `json:"valence" validate:"required,gte=0,lte=1"`
	SeedGenres []string `json:"seed_genres" validate:"required,min=1,max=5"`
}

// ParsePreset decodes and validates raw model output. The whole reply must be
// one JSON object; prose around it is rejected.
func ParsePreset(content string) (domain.Preset, error) {
	raw := strings.TrimSpace(content)
	if raw == "" {
		return domain.Preset{}, fmt.Errorf("classifier: %w", errEmptyCompletion)
	}

	var payload presetPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.Preset{}, fmt.Errorf("classifier: decode preset: %w", err)
	}
	if err := validation.Struct(payload); err != nil {
		return domain.Preset{}, fmt.Errorf("classifier: %w: %w", domain.ErrInvalidPreset, err)
	}

	return domain.NewPreset(domain.Bucket(*payload.Bucket), *payload.Energy, *payload.Valence, payload.SeedGenres, domain.SourceModel)
}
