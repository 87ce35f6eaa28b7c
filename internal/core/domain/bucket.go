package domain

import (
	"fmt"
	"strings"
)

// Bucket is a coarse mood category. Every downstream behaviour is keyed by it.
type Bucket string

const (
	BucketFocus    Bucket = "focus"
	BucketEnergize Bucket = "energize"
	BucketCalm     Bucket = "calm"
)

// Buckets lists every valid bucket in declaration order.
func Buckets() []Bucket {
	return []Bucket{BucketFocus, BucketEnergize, BucketCalm}
}

// Valid reports whether b is one of the three known buckets.
func (b Bucket) Valid() bool {
	switch b {
	case BucketFocus, BucketEnergize, BucketCalm:
		return true
	}
	return false
}

func (b Bucket) String() string {
	return string(b)
}

// ParseBucket converts free-form input (case and surrounding space ignored) to a Bucket.
func ParseBucket(raw string) (Bucket, error) {
	b := Bucket(strings.ToLower(strings.TrimSpace(raw)))
	if !b.Valid() {
		return "", fmt.Errorf("domain: %w: %q", ErrUnknownBucket, raw)
	}
	return b, nil
}
