package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// tariffRefreshSchedule reloads the rate card every five minutes. Tariff
// changes are infrequent; the cadence only bounds how stale a quote can be.
const tariffRefreshSchedule = "0 */5 * * * *"

// TariffRefresher reloads the pricing tariff from its backing source.
// Implemented by the tariffcfg provider.
type TariffRefresher interface {
	Refresh() error
}

// TariffRefreshJob manages the scheduled reload of the pricing tariff.
// Keeps the quote calculation rate card in sync with the tariff file.
type TariffRefreshJob struct {
	refresher TariffRefresher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewTariffRefreshJob creates a new job for reloading the tariff.
func NewTariffRefreshJob(refresher TariffRefresher, logger *slog.Logger) *TariffRefreshJob {
	return &TariffRefreshJob{
		refresher: refresher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "tariff_refresh_job"),
	}
}

// Start refreshes the tariff once immediately, then begins the scheduled
// reload. A failed scheduled refresh is logged and the previous snapshot
// stays active.
func (j *TariffRefreshJob) Start() error {
	ctx := context.Background()

	if err := j.refresher.Refresh(); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(tariffRefreshSchedule, func() {
		if err := j.refresher.Refresh(); err != nil {
			j.logger.ErrorContext(ctx, "Tariff refresh failed, keeping previous snapshot", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Tariff refresh job started (running every five minutes)")
	return nil
}

// Stop stops the tariff refresh job.
func (j *TariffRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tariff refresh job stopped")
}
