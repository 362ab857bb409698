// Package observability provides hooks for tracing and logging resolution.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about resolution passes and manifest loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages such as
// resolve and manifest never import a logger.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    observability.SetManifestHooks(&myManifestHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resolve().OnResolveStart("file trees", pending)
//	// ... resolve ...
//	observability.Resolve().OnResolveComplete("file trees", len(out), time.Since(start), err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from resolution passes.
//
// Shape names the requested result ("file trees", "file collections" or
// "minimal file collections"). Nested contexts report their own start and
// complete events, so passes nest.
type ResolveHooks interface {
	// OnResolveStart is called when a context starts draining its queue.
	OnResolveStart(shape string, pending int)

	// OnElement is called for each element the resolver classifies.
	// Depth counts levels from the drain that started the pass: elements of
	// nested and pushed contexts continue their parent's count.
	OnElement(shape string, depth int, kind string, value any)

	// OnResolveComplete is called when a drain finishes or fails.
	OnResolveComplete(shape string, entries int, duration time.Duration, err error)
}

// =============================================================================
// Manifest Hooks
// =============================================================================

// ManifestHooks receives events from manifest loading.
type ManifestHooks interface {
	// OnManifestLoad records a loaded (or rejected) manifest file.
	OnManifestLoad(path, format string, inputs int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(string, int)                          {}
func (NoopResolveHooks) OnElement(string, int, string, any)                  {}
func (NoopResolveHooks) OnResolveComplete(string, int, time.Duration, error) {}

// NoopManifestHooks is a no-op implementation of ManifestHooks.
type NoopManifestHooks struct{}

func (NoopManifestHooks) OnManifestLoad(string, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolveHooks  ResolveHooks  = NoopResolveHooks{}
	manifestHooks ManifestHooks = NoopManifestHooks{}
	hooksMu       sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks.
// This should be called once at application startup before any resolution.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetManifestHooks registers custom manifest hooks.
func SetManifestHooks(h ManifestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		manifestHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Manifest returns the registered manifest hooks.
func Manifest() ManifestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return manifestHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolveHooks = NoopResolveHooks{}
	manifestHooks = NoopManifestHooks{}
}
