package external

import (
	"context"
	"time"

	"kisankalyan.app/internal/ports"
)

// CompletionProviderLoggingDecorator logs every completion call. Prompt text
// is not logged, only its size.
type CompletionProviderLoggingDecorator struct {
	provider ports.CompletionProvider
	logger   ports.Logger
}

func NewCompletionProviderLoggingDecorator(provider ports.CompletionProvider, logger ports.Logger) ports.CompletionProvider {
	return &CompletionProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

func (d *CompletionProviderLoggingDecorator) Complete(ctx context.Context, request ports.CompletionRequest) (string, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Completion request started",
		ports.F("provider", providerName),
		ports.F("event", "request"),
		ports.F("prompt_chars", len(request.UserContent)),
		ports.F("json_output", request.JSONOutput))

	startTime := time.Now()
	text, err := d.provider.Complete(ctx, request)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Completion request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Completion request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("response_chars", len(text)))

	return text, nil
}

func (d *CompletionProviderLoggingDecorator) IsConfigured() bool {
	return d.provider.IsConfigured()
}

func (d *CompletionProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}
