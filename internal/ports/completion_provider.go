package ports

import "context"

// CompletionRequest is the instruction payload sent to a completion service.
// Zero Temperature or MaxOutputTokens leave the provider's defaults in place.
type CompletionRequest struct {
	SystemInstruction string
	ContextualHint    string
	UserContent       string
	Temperature       float64
	MaxOutputTokens   int
	// JSONOutput asks the provider to return a single JSON object.
	JSONOutput bool
}

// CompletionProvider defines the contract for text completion services.
// Complete returns a ConfigurationError when IsConfigured is false and an
// ExternalAPIError for transport, status or payload failures.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	IsConfigured() bool
	GetProviderName() string
}
