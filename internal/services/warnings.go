package services

import (
	"context"
	"sync"

	"github.com/epeers/fundsite/internal/models"
)

type warningContextKey struct{}

// WarningCollector accumulates warnings during a service call chain.
// Identical warnings are recorded once.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
	seen     map[models.Warning]struct{}
}

// NewWarningContext returns a context carrying a fresh WarningCollector,
// plus a reference to the collector so the handler can retrieve warnings later.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{seen: make(map[models.Warning]struct{})}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning appends a warning to the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if _, dup := wc.seen[w]; dup {
		return
	}
	wc.seen[w] = struct{}{}
	wc.warnings = append(wc.warnings, w)
}

// GetWarnings returns a snapshot of the collected warnings.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if len(wc.warnings) == 0 {
		return nil
	}
	out := make([]models.Warning, len(wc.warnings))
	copy(out, wc.warnings)
	return out
}
