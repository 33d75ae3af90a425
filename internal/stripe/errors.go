package stripe

import "errors"

// Sentinel errors returned by the Connect API client. Callers match them
// with [errors.Is].
var (
	// ErrAccountNotFound is returned when an operation requires a connected
	// account that has not been provisioned yet. It is the only retryable
	// condition in the embedding session flow.
	ErrAccountNotFound = errors.New("Stripe account not found")

	// ErrUnauthorized is returned when the provider rejects the API key.
	ErrUnauthorized = errors.New("stripe API key rejected")
)

// ErrorClassification tags a failed provider call as retryable or terminal.
// The decision is made once, at the call site inside this package, so the
// rest of the application never inspects provider error shapes.
type ErrorClassification int

const (
	// Terminal indicates that repeating the call will not help.
	Terminal ErrorClassification = iota

	// Retryable indicates that the call may succeed later, e.g. the
	// connected account is still being provisioned.
	Retryable
)

// Classify maps a client error to its [ErrorClassification].
func Classify(err error) ErrorClassification {
	if errors.Is(err, ErrAccountNotFound) {
		return Retryable
	}
	return Terminal
}

// APIError is the decoded provider error body, preserved so handlers can
// surface the provider's message verbatim.
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type,omitempty"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "stripe: request failed"
}
