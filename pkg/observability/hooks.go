// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about engine operations, store access, and HTTP traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnEnforceStart(ctx, planID, beamCount)
//	// ... enforce span limits ...
//	observability.Engine().OnEnforceComplete(ctx, planID, res.Inserted, res.Removed, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from plan engine operations.
type EngineHooks interface {
	// Span enforcement events
	OnEnforceStart(ctx context.Context, planID string, beamCount int)
	OnEnforceComplete(ctx context.Context, planID string, inserted, removed int, duration time.Duration)

	// Grid fill events
	OnGridStart(ctx context.Context, planID string, vertexCount int)
	OnGridComplete(ctx context.Context, planID string, columns, beams int, duration time.Duration, err error)

	// Support link events
	OnSupportLink(ctx context.Context, planID string, landed bool, duration time.Duration)

	// Move session events
	OnMoveStart(ctx context.Context, planID string, targets int)
	OnMoveApply(ctx context.Context, planID string, dx, dy float64)
	OnMoveFinalize(ctx context.Context, planID string, duration time.Duration)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from plan store operations.
type StoreHooks interface {
	// OnStoreGet records a document read. hit is false when the key was absent.
	OnStoreGet(ctx context.Context, backend, key string, hit bool, duration time.Duration)

	// OnStorePut records a document write.
	OnStorePut(ctx context.Context, backend, key string, size int, duration time.Duration)

	// OnStoreDelete records a document removal.
	OnStoreDelete(ctx context.Context, backend, key string, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnEnforceStart(context.Context, string, int)                        {}
func (NoopEngineHooks) OnEnforceComplete(context.Context, string, int, int, time.Duration) {}
func (NoopEngineHooks) OnGridStart(context.Context, string, int)                           {}
func (NoopEngineHooks) OnGridComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopEngineHooks) OnSupportLink(context.Context, string, bool, time.Duration) {}
func (NoopEngineHooks) OnMoveStart(context.Context, string, int)                   {}
func (NoopEngineHooks) OnMoveApply(context.Context, string, float64, float64)      {}
func (NoopEngineHooks) OnMoveFinalize(context.Context, string, time.Duration)      {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreGet(context.Context, string, string, bool, time.Duration) {}
func (NoopStoreHooks) OnStorePut(context.Context, string, string, int, time.Duration)  {}
func (NoopStoreHooks) OnStoreDelete(context.Context, string, string, time.Duration)    {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine operations.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
