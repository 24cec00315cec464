// Package scheduler runs the periodic expiry of wizard sessions.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Expirer drops expired sessions and reports how many it removed
type Expirer interface {
	ExpireSessions(ctx context.Context) (int, error)
}

// Sweeper removes expired sessions on a cron schedule
type Sweeper struct {
	cron    *cron.Cron
	target  Expirer
	logger  *logrus.Logger
	baseCtx context.Context
}

// NewSweeper schedules target on a cron schedule such as "@every 10m"
func NewSweeper(ctx context.Context, schedule string, target Expirer, logger *logrus.Logger) (*Sweeper, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Sweeper{
		cron:    cron.New(),
		target:  target,
		logger:  logger,
		baseCtx: ctx,
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(s.baseCtx) }); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce performs a single sweep
func (s *Sweeper) RunOnce(ctx context.Context) int {
	n, err := s.target.ExpireSessions(ctx)
	if err != nil {
		s.logger.Errorf("Session sweep failed: %v", err)
		return 0
	}
	s.logger.WithField("removed", n).Debug("Session sweep finished")
	return n
}

// Start begins running the schedule in the background
func (s *Sweeper) Start() {
	s.logger.Info("Session sweeper started")
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Session sweeper stopped")
}
