package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
	"github.com/ewilliams-labs/moodmate/internal/logging"
	"github.com/ewilliams-labs/moodmate/internal/metrics"
)

// MaxQuoteLength caps a generated quote, in characters.
const MaxQuoteLength = 180

// quoteMarks are stripped from both ends of a quote along with whitespace.
const quoteMarks = "\"'“”‘’«»`"

// QuoteGenerator asks the chat model for a one-line supportive quote.
type QuoteGenerator struct {
	model       ports.ChatModel
	temperature float64
}

// NewQuoteGenerator constructs a QuoteGenerator using DefaultTemperature.
func NewQuoteGenerator(model ports.ChatModel) *QuoteGenerator {
	return &QuoteGenerator{model: model, temperature: DefaultTemperature}
}

// WithTemperature returns a copy of g using t.
func (g *QuoteGenerator) WithTemperature(t float64) *QuoteGenerator {
	cp := *g
	cp.temperature = t
	return &cp
}

// Quote returns a sanitized quote for bucket. Transport failures are returned
// to the caller unchanged in kind. A model that answers with nothing yields
// ("", nil), which callers can tell apart from a failure.
func (g *QuoteGenerator) Quote(ctx context.Context, bucket domain.Bucket, moodContext, model string) (string, error) {
	if g.model == nil {
		return "", fmt.Errorf("quote: no chat model configured")
	}

	content, err := g.model.Chat(ctx, ports.ChatRequest{
		Model:       model,
		Messages:    quoteMessages(bucket, moodContext),
		Temperature: g.temperature,
	})
	if err != nil {
		metrics.Quotes.WithLabelValues("error").Inc()
		return "", fmt.Errorf("quote: %w", err)
	}

	q := SanitizeQuote(content)
	if q == "" {
		metrics.Quotes.WithLabelValues("empty").Inc()
		logging.Ctx(ctx).Warn().Str("bucket", bucket.String()).Msg("quote: model returned an empty quote")
		return "", nil
	}
	metrics.Quotes.WithLabelValues("ok").Inc()
	return q, nil
}

// SanitizeQuote trims whitespace and quote marks, collapses whitespace runs to
// single spaces and truncates to MaxQuoteLength runes. The result is a single
// line that neither starts nor ends with a quote mark.
func SanitizeQuote(raw string) string {
	q := trimQuote(raw)
	q = strings.Join(strings.Fields(q), " ")
	if r := []rune(q); len(r) > MaxQuoteLength {
		q = trimQuote(string(r[:MaxQuoteLength]))
	}
	return q
}

func trimQuote(s string) string {
	return strings.Trim(s, " \t\r\n\v\f"+quoteMarks)
}
