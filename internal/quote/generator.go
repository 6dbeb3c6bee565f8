package quote

import (
	"context"
	"errors"
)

// Generation errors
var (
	// ErrMissingAPIKey means no API key is configured for the upstream API.
	ErrMissingAPIKey = errors.New("groq API key is not configured")
	// ErrTimeout means the upstream call exceeded its time bound.
	ErrTimeout = errors.New("request to Groq API timed out")
	// ErrUpstream covers non-2xx responses and network failures.
	ErrUpstream = errors.New("groq API request failed")
	// ErrMalformedResponse means the response payload lacks the expected text field.
	ErrMalformedResponse = errors.New("invalid response format from Groq API")
)

// Generator produces a fresh motivational quote.
// Implementations must generate a new quote on every call; nothing is cached.
type Generator interface {
	Generate(ctx context.Context) (string, error)
}
