// Package observability provides hooks for metrics and tracing of API calls.
//
// Consumers register hooks at startup to receive an event for every request
// an integrations client sends. No backend is imported here; a program wires
// Prometheus, OpenTelemetry or plain logging by implementing [HTTPHooks].
//
// # Usage
//
//	func main() {
//	    observability.SetHTTPHooks(&myHooks{})
//	    // ... run application
//	}
//
// Clients call the hooks around each round trip:
//
//	observability.HTTP().OnRequest(ctx, api, method, path)
//	observability.HTTP().OnResponse(ctx, api, method, path, status, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// HTTPHooks receives events from API client requests.
type HTTPHooks interface {
	// OnRequest records an outgoing request.
	OnRequest(ctx context.Context, api, method, path string)

	// OnResponse records a response, including non-2xx statuses.
	OnResponse(ctx context.Context, api, method, path string, statusCode int, duration time.Duration)

	// OnError records a transport failure (network error, cancellation).
	OnError(ctx context.Context, api, method, path string, err error)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

var (
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
}
