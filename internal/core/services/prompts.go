package services

import (
	"fmt"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
)

const presetSystemPrompt = "You turn a short description of how someone feels into a music preset and reply with STRICT JSON.\n" +
	"bucket must be exactly one of: focus, energize, calm.\n" +
	"energy and valence are fractions between 0 and 1 that fit the bucket.\n" +
	"seed_genres is a list of 1 to 5 catalog genres such as focus, lofi, classical, electronic, pop, dance, ambient, acoustic, chill.\n" +
	"Reply with a single JSON object with keys bucket, energy, valence, seed_genres and nothing else."

const quoteSystemPrompt = "You write one short original quote of at most 18 words for the given mood bucket.\n" +
	"Keep it supportive and crisp. No author attribution, no quotation marks, no preamble. Reply with the quote text only."

func presetMessages(text string) []ports.ChatMessage {
	return []ports.ChatMessage{
		{Role: ports.RoleSystem, Content: presetSystemPrompt},
		{Role: ports.RoleUser, Content: fmt.Sprintf("Mood and context: %s\nReply with the JSON object now.", text)},
	}
}

func quoteMessages(bucket domain.Bucket, moodContext string) []ports.ChatMessage {
	return []ports.ChatMessage{
		{Role: ports.RoleSystem, Content: quoteSystemPrompt},
		{Role: ports.RoleUser, Content: fmt.Sprintf("Bucket: %s. Context: %s", bucket, moodContext)},
	}
}
