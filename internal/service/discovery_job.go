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

type discoveryJob struct {
	capabilities adapter.CapabilityClient
	sync         PreferenceSyncService
	interval     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewDiscoveryJob creates a job that looks up the companion capability and
// feeds the result into sync. The job is idle until Start is called.
func NewDiscoveryJob(capabilities adapter.CapabilityClient, sync PreferenceSyncService, cfg config.Workers, logger *logger.Logger) DiscoveryJob {
	return &discoveryJob{
		capabilities: capabilities,
		sync:         sync,
		interval:     cfg.DiscoveryInterval,
		logger:       logger,
	}
}

// Start implements DiscoveryJob. It stops any previously running job,
// subscribes to companion capability changes and runs a lookup immediately,
// on every retry event of sync and, when an interval is configured, on a
// ticker. The goroutine exits when ctx is cancelled or Stop is called.
func (j *discoveryJob) Start(ctx context.Context) {
	j.Stop()

	retries, unsubscribe := j.sync.SubscribeRetryEvents()
	j.capabilities.AddCapabilityListener(j, models.CapabilityCompanionApp)

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer unsubscribe()

		var tick <-chan time.Time
		if j.interval > 0 {
			t := time.NewTicker(j.interval)
			defer t.Stop()
			tick = t.C
		}

		j.discover(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case _, ok := <-retries:
				if !ok {
					return
				}
				j.discover(jobCtx)
			case <-tick:
				j.discover(jobCtx)
			}
		}
	}()
}

// Stop implements DiscoveryJob. It blocks until the background goroutine
// has exited. Safe to call when the job is not running.
func (j *discoveryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.capabilities.RemoveCapabilityListener(j, models.CapabilityCompanionApp)
	}
	j.wg.Wait()
}

// OnCapabilityChanged forwards pushed capability changes to the state machine.
func (j *discoveryJob) OnCapabilityChanged(info models.CapabilityInfo) {
	j.sync.OnCapabilityChanged(info)
}

func (j *discoveryJob) discover(ctx context.Context) {
	info, err := j.capabilities.GetCapability(ctx, models.CapabilityCompanionApp)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "discoveryJob.discover").Msg("companion capability lookup failed")
		j.sync.OnNodeDiscoveryFailed(err)
		return
	}

	j.logger.Debug().Str("func", "discoveryJob.discover").Int("nodes", len(info.Nodes)).Msg("companion capability resolved")
	j.sync.OnNodeDiscoveryResult(info.Nodes)
}
