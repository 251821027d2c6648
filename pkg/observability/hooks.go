// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about export passes and decorator
// registry activity.
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
//   - Allows different backends (a structured logger, Prometheus, etc.)
//
// Export is a bounded synchronous computation, so hook methods carry no
// context; they receive plain event data and must not block.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExportHooks(&myExportHooks{})
//	    observability.SetDecoratorHooks(&myDecoratorHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(rootType)
//	// ... walk the value ...
//	observability.Export().OnExportComplete(rootType, atoms, relations, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from export passes.
type ExportHooks interface {
	// OnExportStart records the beginning of one export pass.
	OnExportStart(rootType string)

	// OnExportComplete records the end of one export pass.
	OnExportComplete(rootType string, atoms, relations int, duration time.Duration, err error)

	// OnSingletonHit records a singleton cache hit during a walk.
	OnSingletonHit(atomType, label string)
}

// =============================================================================
// Decorator Hooks
// =============================================================================

// DecoratorHooks receives events from the decorator registry and store.
type DecoratorHooks interface {
	// OnRegister records a type-level decorator registration.
	OnRegister(typeName string)

	// OnAnnotate records a successful instance annotation.
	OnAnnotate(kind string)

	// OnAnnotateIgnored records an annotation dropped for an unknown kind.
	OnAnnotateIgnored(kind string)

	// OnCollect records a decorator collection for a type name.
	OnCollect(typeName string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(string)                                     {}
func (NoopExportHooks) OnExportComplete(string, int, int, time.Duration, error)  {}
func (NoopExportHooks) OnSingletonHit(string, string)                            {}

// NoopDecoratorHooks is a no-op implementation of DecoratorHooks.
type NoopDecoratorHooks struct{}

func (NoopDecoratorHooks) OnRegister(string)        {}
func (NoopDecoratorHooks) OnAnnotate(string)        {}
func (NoopDecoratorHooks) OnAnnotateIgnored(string) {}
func (NoopDecoratorHooks) OnCollect(string)         {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	exportHooks    ExportHooks    = NoopExportHooks{}
	decoratorHooks DecoratorHooks = NoopDecoratorHooks{}
	hooksMu        sync.RWMutex
)

// SetExportHooks registers custom export hooks.
// This should be called once at application startup before any exports.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// SetDecoratorHooks registers custom decorator hooks.
// This should be called once at application startup before any registrations.
func SetDecoratorHooks(h DecoratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		decoratorHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Decorators returns the registered decorator hooks.
func Decorators() DecoratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return decoratorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
	decoratorHooks = NoopDecoratorHooks{}
}
