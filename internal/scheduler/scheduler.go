// Package scheduler runs a background loop that fires a job once per day at
// a configured wall-clock time. It knows nothing about what the job does;
// the orchestrator is injected as a plain function so it stays triggerable
// by either the scheduler or the HTTP endpoint.
package scheduler

import (
	"context"
	"time"

	"github.com/motibot/motibot/internal/logger"
)

// Job is the work fired on each scheduled tick.
type Job func(ctx context.Context)

// pollInterval is the resolution of the schedule check. Runs are expected to
// finish well within one interval; overlapping runs are not guarded against.
const pollInterval = 30 * time.Second

// Scheduler fires a job daily at hour:minute local time.
type Scheduler struct {
	hour     int
	minute   int
	interval time.Duration
	job      Job
	log      *logger.Logger
	now      func() time.Time

	lastRun time.Time
}

// New creates a Scheduler for the given daily time.
func New(hour, minute int, job Job, log *logger.Logger) *Scheduler {
	return &Scheduler{
		hour:     hour,
		minute:   minute,
		interval: pollInterval,
		job:      job,
		log:      log.WithComponent("scheduler"),
		now:      time.Now,
	}
}

// Run starts the polling loop. It blocks until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info().
		Int("hour", s.hour).
		Int("minute", s.minute).
		Dur("interval", s.interval).
		Msg("scheduler starting")

	// Check immediately so a restart after the scheduled time still fires
	// that day's send.
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick fires the job when today's scheduled time has passed and the job has
// not yet run today.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	due := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())

	if now.Before(due) {
		return
	}
	if sameDay(s.lastRun, now) {
		return
	}

	s.lastRun = now
	s.log.Info().Time("due", due).Msg("scheduled dispatch firing")
	s.job(ctx)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
