package jobs

import (
	"context"
	"time"

	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/clock"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// UnclaimedParcelReportJob logs every PENDING parcel that has been held
// longer than maxAge, so the desk can chase the guest before check-out.
type UnclaimedParcelReportJob struct {
	handler  queries.SearchParcelsQueryHandler
	clock    clock.Clock
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewUnclaimedParcelReportJob(
	handler queries.SearchParcelsQueryHandler,
	clock clock.Clock,
	maxAge time.Duration,
	schedule string,
	logger *zap.Logger,
) *UnclaimedParcelReportJob {
	return &UnclaimedParcelReportJob{
		handler:  handler,
		clock:    clock,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "unclaimed_parcel_report_job")),
	}
}

func (j *UnclaimedParcelReportJob) Name() string {
	return "unclaimed parcel report"
}

func (j *UnclaimedParcelReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("unclaimed parcel report failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("unclaimed parcel report job started",
		zap.String("schedule", j.schedule),
		zap.Duration("max_age", j.maxAge))
	return nil
}

// Run reports overdue parcels and returns how many it found.
func (j *UnclaimedParcelReportJob) Run(ctx context.Context) (int, error) {
	pending := parcel.Pending
	found, err := j.handler.Handle(ctx, queries.NewSearchParcelsQuery(parcel.Filter{Status: &pending}))
	if err != nil {
		return 0, err
	}

	cutoff := j.clock.Now().Add(-j.maxAge)
	overdue := 0
	for _, p := range found {
		if !p.ReceivedTime.Before(cutoff) {
			continue
		}
		overdue++
		j.logger.Warn("parcel awaiting pickup",
			zap.Stringer("parcel_id", p.ID),
			zap.Stringer("guest_id", p.GuestID),
			zap.String("description", p.Description),
			zap.Time("received_time", p.ReceivedTime),
		)
	}

	if overdue > 0 {
		j.logger.Info("unclaimed parcel report", zap.Int("overdue", overdue), zap.Int("pending", len(found)))
	}
	return overdue, nil
}

func (j *UnclaimedParcelReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("unclaimed parcel report job stopped")
}
