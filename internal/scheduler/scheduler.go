package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nomadweather/weather-dashboard/internal/dashboard"
)

// Scheduler periodically refreshes the destination previews so the travel
// cards do not go stale while the dashboard stays open.
type Scheduler struct {
	scheduler *gocron.Scheduler
	dash      *dashboard.Dashboard
	interval  time.Duration
}

// New creates a new Scheduler.
func New(dash *dashboard.Dashboard, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		dash:      dash,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
// An interval of zero disables the job.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: preview refresh disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: refreshing destination previews")

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		s.dash.RefreshPreviews(ctx)
		log.Println("scheduler: preview refresh completed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
