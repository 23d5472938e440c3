package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

// Scheduler periodically runs the settlement sweep. The sweep function is
// injected so the loop itself carries no storage dependency.
type Scheduler struct {
	Interval time.Duration
	// Sweep settles everything that matured and returns how many it settled.
	Sweep func() (int, error)
}

// IntervalFromEnv reads SETTLE_INTERVAL_SEC, defaulting to 60 seconds.
func IntervalFromEnv() time.Duration {
	if s := os.Getenv("SETTLE_INTERVAL_SEC"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return 60 * time.Second
}

// Run blocks until ctx is cancelled, invoking the sweep once per interval.
// An immediate sweep runs at startup to catch anything that matured while
// the server was down.
func (s *Scheduler) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[scheduler] stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Scheduler) sweep() {
	n, err := s.Sweep()
	if err != nil {
		log.Printf("[scheduler] sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[scheduler] settled %d matured investment(s)", n)
	}
}
