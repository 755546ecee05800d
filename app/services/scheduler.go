package services

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/robfig/cron/v3"

	"gpa-tracker/app/session"
)

// StartScheduler starts the background jobs: evicting idle sessions on the given
// cron schedule. The returned cron must be stopped on shutdown.
func StartScheduler(store *session.Store, schedule string, logger log.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		if removed := store.Sweep(); removed > 0 {
			level.Info(logger).Log("msg", "expired idle sessions", "removed", removed, "live", store.Len())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	level.Info(logger).Log("msg", "scheduler started", "schedule", schedule)
	c.Start()
	return c, nil
}
