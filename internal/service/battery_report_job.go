package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
)

type batteryReportJob struct {
	messages adapter.MessageClient
	reader   BatteryReader

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool

	logger *logger.Logger
}

// NewBatteryReportJob creates a job that sends the phone battery level to a
// wearable on a ticker. The job is idle until Start is called.
func NewBatteryReportJob(messages adapter.MessageClient, reader BatteryReader, logger *logger.Logger) BatteryReportJob {
	return &batteryReportJob{messages: messages, reader: reader, logger: logger}
}

// Start implements BatteryReportJob. It stops any previously running job,
// reports once immediately and then every interval to nodeID. If interval
// is zero or negative it defaults to config.DefaultBatteryReportInterval.
func (j *batteryReportJob) Start(ctx context.Context, nodeID string, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultBatteryReportInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.running = true
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("func", "batteryReportJob.Start").Str("node", nodeID).Dur("interval", interval).Msg("battery reporting started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.report(jobCtx, nodeID)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.report(jobCtx, nodeID)
			}
		}
	}()
}

// Stop implements BatteryReportJob. It cancels the background goroutine and
// blocks until it has exited. Safe to call when the job is not running.
func (j *batteryReportJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.running = false
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Info().Str("func", "batteryReportJob.Stop").Msg("battery reporting stopped")
	}
	j.wg.Wait()
}

func (j *batteryReportJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *batteryReportJob) report(ctx context.Context, nodeID string) {
	level, err := j.reader.ReadLevel(ctx)
	if err != nil {
		j.logger.Error().Err(err).Str("func", "batteryReportJob.report").Msg("unable to read battery level")
		return
	}

	data, err := models.EncodeBatteryLevel(level)
	if err != nil {
		j.logger.Error().Err(err).Str("func", "batteryReportJob.report").Msg("unable to encode battery level")
		return
	}

	if err = j.messages.SendMessage(ctx, nodeID, models.PathBatteryLevel, data); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Str("func", "batteryReportJob.report").Str("node", nodeID).Msg("unable to send battery level")
	}
}
