// Package external provides adapters for the services the assistant calls
// out to: the completion service, the weather provider and the caches.
package external

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// errorBodyLimit caps how much of a failed response body is kept for logs.
const errorBodyLimit = 4 << 10

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewTracedHTTPClient returns a client whose transport emits OpenTelemetry
// spans for every outbound request.
func NewTracedHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func readErrorBody(body io.Reader) string {
	payload, err := io.ReadAll(io.LimitReader(body, errorBodyLimit))
	if err != nil {
		return fmt.Sprintf("<unreadable body: %v>", err)
	}
	return string(payload)
}
