package scheduler

import (
	"context"
	"fmt"
	"log"

	"newspulse/history"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the historical snapshot job on a cron schedule. Job errors
// are logged; the schedule is kept so a transient persistence failure does
// not stop future snapshots.
type Scheduler struct {
	cron       *cron.Cron
	aggregator *history.Aggregator
}

// New creates a scheduler that runs aggregator.SnapshotNow on the given cron
// spec (standard 5-field syntax).
func New(spec string, aggregator *history.Aggregator) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Println("Scheduled snapshot starting...")
		if err := aggregator.SnapshotNow(context.Background()); err != nil {
			log.Printf("Scheduled snapshot failed: %v", err)
			return
		}
		log.Println("Scheduled snapshot complete")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot cron spec %q: %w", spec, err)
	}
	return &Scheduler{cron: c, aggregator: aggregator}, nil
}

// Start begins the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
