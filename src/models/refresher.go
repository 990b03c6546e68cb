package models

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Display field names, shared with the presentation surfaces.
const (
	FieldAvailable   = "Available Bays"
	FieldTemperature = "Temperature"
	FieldTime        = "Time"
)

// DisplayFields lists the fields in display order.
var DisplayFields = []string{FieldAvailable, FieldTemperature, FieldTime}

// DisplayRefresher periodically pulls carpark values and pushes formatted
// strings to a presentation surface. Mutations may also call Refresh
// directly; both paths read the same state, so repeated refreshes with
// unchanged state produce identical output.
type DisplayRefresher struct {
	surface Surface
	clock   Clock
	logger  *slog.Logger
	period  time.Duration

	mutex    sync.Mutex
	provider DataProvider
}

// NewDisplayRefresher creates a refresher ticking every period (1s when
// period is zero). No provider is attached yet; ticks are no-ops until
// Attach is called.
func NewDisplayRefresher(surface Surface, clock Clock, logger *slog.Logger, period time.Duration) *DisplayRefresher {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	if period <= 0 {
		period = time.Second
	}
	return &DisplayRefresher{
		surface: surface,
		clock:   clock,
		logger:  logger,
		period:  period,
	}
}

// Attach sets the data source the refresher pulls from.
func (r *DisplayRefresher) Attach(provider DataProvider) {
	r.mutex.Lock()
	r.provider = provider
	r.mutex.Unlock()
}

// Run refreshes the surface once per period until ctx is cancelled.
func (r *DisplayRefresher) Run(ctx context.Context) {
	t := time.NewTicker(r.period)
	defer t.Stop()
	r.logger.Info("display refresher started", "period", r.period.String())

	for {
		select {
		case <-t.C:
			r.Refresh()
		case <-ctx.Done():
			r.logger.Info("display refresher stopped")
			return
		}
	}
}

// Refresh pushes the current values to the surface. With no provider
// attached, or with the surface closed, it is a silent no-op.
func (r *DisplayRefresher) Refresh() {
	r.mutex.Lock()
	provider := r.provider
	r.mutex.Unlock()

	if provider == nil || !r.surface.IsOpen() {
		return
	}

	now := provider.CurrentTime()
	if now.IsZero() {
		now = r.clock()
	}

	r.surface.Update(map[string]string{
		FieldAvailable:   fmt.Sprintf("%03d", provider.AvailableSpaces()),
		FieldTemperature: fmt.Sprintf("%.1f°C", provider.Temperature()),
		FieldTime:        now.Format("15:04:05"),
	})
}
