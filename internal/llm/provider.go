package llm

import "context"

// Provider is the interface for generation backends. A flow hands over a
// fully-built prompt and a pointer to its output schema; the provider fills
// the schema from the model's JSON answer.
type Provider interface {
	GenerateJSON(ctx context.Context, prompt string, requestID string, out any) error
	GetProviderName() string
}

// ProviderError represents an error from a generation backend.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes across providers
const (
	ErrCodeAPIKey        = "invalid_api_key"
	ErrCodeRateLimit     = "rate_limit_exceeded"
	ErrCodeServiceDown   = "service_unavailable"
	ErrCodeInvalidOutput = "invalid_output"
	ErrCodeTimeout       = "timeout"
)
