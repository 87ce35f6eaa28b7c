package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

func TestSanitizeQuote(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "Breathe in, you have got this.", want: "Breathe in, you have got this."},
		{name: "straight quotes", raw: `"Small steps still move you forward."`, want: "Small steps still move you forward."},
		{name: "curly quotes and padding", raw: "  “Rest is part of the work.”  ", want: "Rest is part of the work."},
		{name: "newlines collapsed", raw: "Move\nyour body,\r\n\tclear your mind.", want: "Move your body, clear your mind."},
		{name: "only quote marks", raw: `"''"`, want: ""},
		{name: "empty", raw: "", want: ""},
		{name: "cut mid-word", raw: strings.Repeat("a", 178) + " wonderful", want: strings.Repeat("a", 178) + " w"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeQuote(tc.raw); got != tc.want {
				t.Fatalf("SanitizeQuote(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSanitizeQuote_Properties(t *testing.T) {
	inputs := []string{
		strings.Repeat("keep going ", 40),
		"\"" + strings.Repeat("é", 300) + "\"",
		"'" + strings.Repeat("a", 179) + " \"tail\"'",
		"line one\nline two\n\n\"",
		strings.Repeat("x", 179) + "\"yz",
	}

	for _, in := range inputs {
		got := SanitizeQuote(in)
		if n := utf8.RuneCountInString(got); n > MaxQuoteLength {
			t.Fatalf("quote has %d runes, max %d", n, MaxQuoteLength)
		}
		if strings.ContainsAny(got, "\n\r") {
			t.Fatalf("quote contains a line break: %q", got)
		}
		if got == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(got)
		last, _ := utf8.DecodeLastRuneInString(got)
		if strings.ContainsRune(quoteMarks+" ", first) || strings.ContainsRune(quoteMarks+" ", last) {
			t.Fatalf("quote starts or ends with a quote mark or space: %q", got)
		}
	}
}

func TestQuoteGenerator_Quote(t *testing.T) {
	t.Run("sanitized reply", func(t *testing.T) {
		chat := &mockChat{content: "\"You are stronger than this set.\"\n"}
		got, err := NewQuoteGenerator(chat).Quote(context.Background(), domain.BucketEnergize, "gym", "llama3:8b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "You are stronger than this set." {
			t.Fatalf("got %q", got)
		}
		req := chat.requests[0]
		if req.JSON || req.Model != "llama3:8b" || req.Temperature != DefaultTemperature {
			t.Fatalf("unexpected request: %+v", req)
		}
		if !strings.Contains(req.Messages[1].Content, "energize") || !strings.Contains(req.Messages[1].Content, "gym") {
			t.Fatalf("user prompt missing bucket or context: %q", req.Messages[1].Content)
		}
	})

	t.Run("transport error propagates", func(t *testing.T) {
		cause := errors.New("connection refused")
		got, err := NewQuoteGenerator(&mockChat{err: cause}).Quote(context.Background(), domain.BucketCalm, "", "")
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped transport error, got %v", err)
		}
		if got != "" {
			t.Fatalf("expected empty quote on error, got %q", got)
		}
	})

	t.Run("empty reply is not an error", func(t *testing.T) {
		got, err := NewQuoteGenerator(&mockChat{content: "  \"\"  "}).Quote(context.Background(), domain.BucketFocus, "", "")
		if err != nil || got != "" {
			t.Fatalf("expected (\"\", nil), got (%q, %v)", got, err)
		}
	})

	t.Run("no model configured", func(t *testing.T) {
		if _, err := NewQuoteGenerator(nil).Quote(context.Background(), domain.BucketFocus, "", ""); err == nil {
			t.Fatal("expected error without a chat model")
		}
	})

	t.Run("temperature override", func(t *testing.T) {
		chat := &mockChat{content: "ok"}
		base := NewQuoteGenerator(chat)
		if _, err := base.WithTemperature(0.9).Quote(context.Background(), domain.BucketFocus, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if chat.requests[0].Temperature != 0.9 {
			t.Fatalf("temperature = %v, want 0.9", chat.requests[0].Temperature)
		}
		if base.temperature != DefaultTemperature {
			t.Fatalf("WithTemperature mutated the receiver")
		}
	})
}
