package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionCleaner purges sessions that can no longer authenticate anyone.
type SessionCleaner interface {
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron     *cron.Cron
	sessions SessionCleaner
	timeout  time.Duration
	log      *zap.Logger
}

// New registers the session cleanup job on spec (six-field cron with seconds).
func New(spec string, sessions SessionCleaner, timeout time.Duration, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		sessions: sessions,
		timeout:  timeout,
		log:      log.With(zap.String("component", "scheduler")),
	}

	if _, err := s.cron.AddFunc(spec, s.CleanSessions); err != nil {
		return nil, fmt.Errorf("register session cleanup %q: %w", spec, err)
	}
	return s, nil
}

// CleanSessions is the body of the session cleanup job.
func (s *Scheduler) CleanSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	removed, err := s.sessions.CleanExpiredSessions(ctx)
	if err != nil {
		s.log.Error("Session cleanup failed", zap.Error(err))
		return
	}
	s.log.Info("Session cleanup finished", zap.Int64("removed", removed))
}

func (s *Scheduler) Start() {
	s.log.Info("Starting cron scheduler", zap.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Cron scheduler stopped")
}
