package schedule

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the comparison on a cron schedule (watch mode).
type Scheduler struct {
	Cron *cron.Cron
}

// NewScheduler creates a scheduler with second-resolution cron expressions.
func NewScheduler() *Scheduler {
	return &Scheduler{Cron: cron.New(cron.WithSeconds())}
}

// Register adds the re-evaluation task under the given cron expression.
func (s *Scheduler) Register(spec string, task func()) error {
	if _, err := s.Cron.AddFunc(spec, task); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] watch scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}
