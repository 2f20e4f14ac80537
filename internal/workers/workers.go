package workers

import (
	"context"

	"github.com/MKhiriev/watchface-sync/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	w.logger.Info().Str("func", "*Workers.Run").Int("count", len(w.workers)).Msg("starting workers")
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Str("func", "*Workers.Stop").Msg("workers stopped")
}
