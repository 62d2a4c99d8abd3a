package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ershov-z/stageflow/pkg/observability"
)

// logHooks forwards scheduler and variant events to the CLI logger at
// debug level. Registered once in the root command's PersistentPreRun.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.SchedulerHooks = (*logHooks)(nil)
	_ observability.VariantHooks   = (*logHooks)(nil)
)

func (h *logHooks) OnSegmentStart(_ context.Context, n int, method string) {
	h.logger.Debugf("Optimizing segment of %d items (%s)", n, method)
}

func (h *logHooks) OnSegmentComplete(_ context.Context, n int, method string, cost float64, d time.Duration) {
	h.logger.Debugf("Segment of %d done: cost=%v method=%s (%s)", n, cost, method, d.Round(time.Millisecond))
}

func (h *logHooks) OnFillerInserted(_ context.Context, host string) {
	h.logger.Debugf("Inserted filler hosted by %s", host)
}

func (h *logHooks) OnJunctionUnresolved(_ context.Context) {
	h.logger.Debug("No admissible filler host; junction left weak-conflicted")
}

func (h *logHooks) OnVariantKept(_ context.Context, seed int64, fillers int) {
	h.logger.Debugf("Variant kept: seed=%d fillers=%d", seed, fillers)
}

func (h *logHooks) OnVariantDuplicate(_ context.Context, seed int64) {
	h.logger.Debugf("Variant discarded as duplicate: seed=%d", seed)
}
