package markov

import "errors"

// Sentinel errors returned by model construction and queries.
var (
	ErrInvalidOrder      = errors.New("invalid model order")
	ErrSourceUnavailable = errors.New("source text unavailable")
	ErrInvalidText       = errors.New("source text is not valid UTF-8")
	ErrEmptyModel        = errors.New("model has no k-grams")
	ErrUnknownKgram      = errors.New("k-gram not in model")
	ErrNoFollower        = errors.New("k-gram has no follower")
)
