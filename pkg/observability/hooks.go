// Package observability provides hooks for instrumenting the scheduler.
//
// The scheduling packages stay free of hard dependencies on logging or
// metrics backends. Consumers register hook implementations at startup;
// the default implementations are no-ops, so uninstrumented use costs a
// single interface call per event.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSchedulerHooks(&mySchedulerHooks{})
//	    // ... run application
//	}
//
// The scheduler emits events during search and variant generation:
//
//	observability.Scheduler().OnSegmentComplete(ctx, n, method, cost, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// Search method labels reported by segment events.
const (
	MethodExhaustive = "exhaustive"
	MethodDP         = "dp"
	MethodSampled    = "sampled"
)

// SchedulerHooks receives events from segment optimization and filler
// insertion.
type SchedulerHooks interface {
	// OnSegmentStart is called before a movable segment of n items is optimized.
	OnSegmentStart(ctx context.Context, n int, method string)

	// OnSegmentComplete reports the best cost found for a segment.
	// An infinite cost means the segment is infeasible.
	OnSegmentComplete(ctx context.Context, n int, method string, cost float64, duration time.Duration)

	// OnFillerInserted is called when a filler with the given host actor
	// is placed between two conflicting performances.
	OnFillerInserted(ctx context.Context, host string)

	// OnJunctionUnresolved is called when no admissible host actor exists
	// for a weak-conflict junction; the junction stays conflicted.
	OnJunctionUnresolved(ctx context.Context)
}

// VariantHooks receives events from the variant generator.
type VariantHooks interface {
	// OnVariantKept is called when a freshly built arrangement survives
	// deduplication.
	OnVariantKept(ctx context.Context, seed int64, fillers int)

	// OnVariantDuplicate is called when a built arrangement hashes to an
	// already-seen content hash and is discarded.
	OnVariantDuplicate(ctx context.Context, seed int64)
}

// NoopSchedulerHooks is a no-op implementation of SchedulerHooks.
type NoopSchedulerHooks struct{}

func (NoopSchedulerHooks) OnSegmentStart(context.Context, int, string) {}
func (NoopSchedulerHooks) OnSegmentComplete(context.Context, int, string, float64, time.Duration) {
}
func (NoopSchedulerHooks) OnFillerInserted(context.Context, string) {}
func (NoopSchedulerHooks) OnJunctionUnresolved(context.Context)     {}

// NoopVariantHooks is a no-op implementation of VariantHooks.
type NoopVariantHooks struct{}

func (NoopVariantHooks) OnVariantKept(context.Context, int64, int) {}
func (NoopVariantHooks) OnVariantDuplicate(context.Context, int64) {}

var (
	schedulerHooks SchedulerHooks = NoopSchedulerHooks{}
	variantHooks   VariantHooks   = NoopVariantHooks{}
	hooksMu        sync.RWMutex
)

// SetSchedulerHooks registers custom scheduler hooks.
// This should be called once at application startup before any scheduling runs.
func SetSchedulerHooks(h SchedulerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		schedulerHooks = h
	}
}

// SetVariantHooks registers custom variant generator hooks.
// This should be called once at application startup before any scheduling runs.
func SetVariantHooks(h VariantHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		variantHooks = h
	}
}

// Scheduler returns the registered scheduler hooks.
func Scheduler() SchedulerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return schedulerHooks
}

// Variants returns the registered variant generator hooks.
func Variants() VariantHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return variantHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	schedulerHooks = NoopSchedulerHooks{}
	variantHooks = NoopVariantHooks{}
}
