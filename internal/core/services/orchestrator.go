package services

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
	"github.com/ewilliams-labs/moodmate/internal/logging"
)

// Options tunes an Orchestrator. Zero values select the built-in defaults.
type Options struct {
	Presets      *domain.PresetTable
	Queries      *domain.QueryTable
	Rules        []KeywordRule
	Temperature  *float64
	SeedArtists  int
	Market       string
	DefaultLimit int
}

// Orchestrator wires the classifier, the resolver and the quote generator
// behind the calls the CLI and the HTTP adapter make.
type Orchestrator struct {
	classifier   *Classifier
	quotes       *QuoteGenerator
	newCatalog   ports.CatalogFactory
	resolverOpts []ResolverOption
	defaultLimit int
}

// NewOrchestrator constructs an Orchestrator. newCatalog is called once per
// Recommend so that every call gets a fresh catalog client.
func NewOrchestrator(model ports.ChatModel, newCatalog ports.CatalogFactory, opts Options) *Orchestrator {
	var classifierOpts []ClassifierOption
	if opts.Presets != nil {
		classifierOpts = append(classifierOpts, WithPresetTable(*opts.Presets))
	}
	if len(opts.Rules) > 0 {
		classifierOpts = append(classifierOpts, WithKeywordRules(opts.Rules))
	}

	quotes := NewQuoteGenerator(model)
	if opts.Temperature != nil {
		classifierOpts = append(classifierOpts, WithClassifierTemperature(*opts.Temperature))
		quotes = quotes.WithTemperature(*opts.Temperature)
	}

	var resolverOpts []ResolverOption
	if opts.Queries != nil {
		resolverOpts = append(resolverOpts, WithQueryTable(*opts.Queries))
	}
	if opts.SeedArtists > 0 {
		resolverOpts = append(resolverOpts, WithSeedArtists(opts.SeedArtists))
	}
	if opts.Market != "" {
		resolverOpts = append(resolverOpts, WithMarket(opts.Market))
	}

	defaultLimit := opts.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	return &Orchestrator{
		classifier:   NewClassifier(model, classifierOpts...),
		quotes:       quotes,
		newCatalog:   newCatalog,
		resolverOpts: resolverOpts,
		defaultLimit: defaultLimit,
	}
}

// Classify delegates to the classifier and never fails.
func (o *Orchestrator) Classify(ctx context.Context, text, model string) domain.Preset {
	return o.classifier.Classify(ctx, text, model)
}

// Recommend builds a catalog client and resolves tracks. The only error is a
// client that could not be built, typically domain.ErrMissingCredentials.
// A limit below 1 uses the configured default.
func (o *Orchestrator) Recommend(ctx context.Context, bucket domain.Bucket, energy, valence float64, limit int) ([]domain.TrackRecord, error) {
	if o.newCatalog == nil {
		return nil, fmt.Errorf("orchestrator: %w", domain.ErrMissingCredentials)
	}
	catalog, err := o.newCatalog()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: catalog client: %w", err)
	}
	if limit < 1 {
		limit = o.defaultLimit
	}
	return NewResolver(catalog, o.resolverOpts...).Recommend(ctx, bucket, energy, valence, limit), nil
}

// Quote delegates to the quote generator.
func (o *Orchestrator) Quote(ctx context.Context, bucket domain.Bucket, moodContext, model string) (string, error) {
	return o.quotes.Quote(ctx, bucket, moodContext, model)
}

// SuggestRequest asks for one classification plus optional tracks and quote.
type SuggestRequest struct {
	Text  string
	Model string
	Limit int
	Music bool
	Quote bool
}

// Suggestion is the combined result of Suggest. TracksErr and QuoteErr record
// a part that was requested but failed; the other parts are still filled in.
type Suggestion struct {
	Preset    domain.Preset
	Tracks    []domain.TrackRecord
	Quote     string
	TracksErr error
	QuoteErr  error
}

// Suggest classifies once and reuses the preset for the music and quote
// requests. The free text doubles as the quote context.
func (o *Orchestrator) Suggest(ctx context.Context, req SuggestRequest) Suggestion {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	out := Suggestion{Preset: o.Classify(ctx, req.Text, req.Model)}
	bucket := out.Preset.Bucket()

	if req.Music {
		out.Tracks, out.TracksErr = o.Recommend(ctx, bucket, out.Preset.Energy(), out.Preset.Valence(), req.Limit)
		if out.TracksErr != nil {
			logging.Ctx(ctx).Warn().Err(out.TracksErr).Msg("orchestrator: recommendations unavailable")
		}
	}
	if req.Quote {
		out.Quote, out.QuoteErr = o.Quote(ctx, bucket, req.Text, req.Model)
		if out.QuoteErr != nil {
			logging.Ctx(ctx).Warn().Err(out.QuoteErr).Msg("orchestrator: quote unavailable")
		}
	}
	return out
}
