package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper evicts expired entries. Implemented by cache.MemoryCache.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type CacheSweepJob struct {
	sweeper  Sweeper
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewCacheSweepJob(sweeper Sweeper, schedule string, logger *zap.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "cache_sweep_job")),
	}
}

func (j *CacheSweepJob) Name() string {
	return "cache sweep"
}

func (j *CacheSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("cache sweep job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one sweep.
func (j *CacheSweepJob) Run(ctx context.Context) {
	evicted, err := j.sweeper.Sweep(ctx)
	if err != nil {
		j.logger.Error("cache sweep failed", zap.Error(err))
		return
	}
	if evicted > 0 {
		j.logger.Debug("expired cache entries evicted", zap.Int("count", evicted))
	}
}

func (j *CacheSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("cache sweep job stopped")
}
