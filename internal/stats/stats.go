// Package stats periodically exports inventory gauges from the datastore.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradepost/tradepost/internal/metrics"
	"github.com/tradepost/tradepost/internal/store"
)

// Collector refreshes the inventory and token gauges on a schedule.
type Collector struct {
	cron  *cron.Cron
	store store.Store
	log   *slog.Logger
}

// NewCollector creates a Collector that refreshes gauges every interval.
func NewCollector(
	st store.Store,
	interval time.Duration,
	log *slog.Logger,
) (*Collector, error) {
	c := cron.New()

	col := &Collector{
		cron:  c,
		store: st,
		log:   log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), col.refresh); err != nil {
		return nil, err
	}

	return col, nil
}

// Start begins the scheduled refresh and primes the gauges immediately,
// so scrapes before the first tick see real values.
func (c *Collector) Start() {
	c.log.Info("stats collector started")
	c.refresh()
	c.cron.Start()
}

// Stop gracefully stops the collector, waiting for a running refresh to finish.
func (c *Collector) Stop() context.Context {
	c.log.Info("stats collector stopping")
	return c.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (c *Collector) Entries() []cron.Entry {
	return c.cron.Entries()
}

// Refresh updates all gauges once. Exported for one-shot use.
func (c *Collector) Refresh(ctx context.Context) error {
	total, err := c.store.CountItems(ctx)
	if err != nil {
		return err
	}
	metrics.ItemsTotal.Set(float64(total))

	byCategory, err := c.store.CountItemsByCategory(ctx)
	if err != nil {
		return err
	}
	for category, count := range byCategory {
		metrics.ItemsByCategory.WithLabelValues(category.String()).Set(float64(count))
	}

	tokens, err := c.store.CountActiveTokens(ctx)
	if err != nil {
		return err
	}
	metrics.AuthTokensActive.Set(float64(tokens))

	return nil
}

func (c *Collector) refresh() {
	if err := c.Refresh(context.Background()); err != nil {
		c.log.Error("stats refresh failed", "error", err)
	}
}
