package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically re-fetches the catalog snapshot so sessions
// started later see current inventory. Running sessions keep the view
// they started with.
type Scheduler struct {
	cron        *cron.Cron
	ctx         context.Context
	cancel      context.CancelFunc
	refreshFunc func(ctx context.Context) error
}

func New(refreshFunc func(ctx context.Context) error) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		ctx:         ctx,
		cancel:      cancel,
		refreshFunc: refreshFunc,
	}
}

// Start registers the refresh job under the given cron spec.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		log.Printf("refreshing catalog snapshot")
		if err := s.refreshFunc(s.ctx); err != nil {
			log.Printf("catalog snapshot refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("scheduler started, catalog refresh at %q (UTC)", spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Printf("scheduler stopped")
}
