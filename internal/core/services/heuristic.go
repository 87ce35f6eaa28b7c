package services

import (
	"slices"
	"strings"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

// DefaultBucket is chosen when no keyword rule matches.
const DefaultBucket = domain.BucketFocus

// KeywordRule maps a set of lower-case substrings to a bucket. Prefix stems
// such as "concentrat" match every word built on them.
type KeywordRule struct {
	Bucket   domain.Bucket
	Keywords []string
}

// DefaultKeywordRules returns the built-in rules. Order is significant: the
// first rule with a matching keyword wins.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{Bucket: domain.BucketFocus, Keywords: []string{"sleepy", "tired", "focus", "study", "concentrat"}},
		{Bucket: domain.BucketEnergize, Keywords: []string{"gym", "motivat", "energy", "pump", "workout"}},
		{Bucket: domain.BucketCalm, Keywords: []string{"anxious", "stress", "calm", "relax", "overwhelm"}},
	}
}

// MatchBucket evaluates rules in order against the lower-cased text and returns
// the bucket of the first rule that matches, or DefaultBucket.
func MatchBucket(rules []KeywordRule, text string) domain.Bucket {
	t := strings.ToLower(text)
	for _, rule := range rules {
		if slices.ContainsFunc(rule.Keywords, func(k string) bool { return strings.Contains(t, k) }) {
			return rule.Bucket
		}
	}
	return DefaultBucket
}
