package domain

import "errors"

var (
	// ErrUnknownBucket is returned when a value is not focus, energize or calm.
	ErrUnknownBucket = errors.New("unknown bucket")

	// ErrInvalidPreset is returned when preset fields fall outside their ranges.
	ErrInvalidPreset = errors.New("invalid preset")

	// ErrMissingCredentials is returned when the catalog client id or secret is absent.
	ErrMissingCredentials = errors.New("catalog credentials not set")
)
