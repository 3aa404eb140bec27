package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"collegeschedule_backend/internals/configs"
	authRepo "collegeschedule_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanup purges expired blacklist entries on TOKEN_BLACKLIST_CLEANUP_CRON
// (default @daily). The returned cron must be stopped on shutdown.
func StartBlacklistCleanup(bl authRepo.Blacklist) (*cron.Cron, error) {
	spec := configs.GetEnv("TOKEN_BLACKLIST_CLEANUP_CRON", "@daily")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { RunCleanup(bl, time.Now()) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[INFO] token_blacklist cleanup scheduled (%s)", spec)
	return c, nil
}

func RunCleanup(bl authRepo.Blacklist, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := bl.Purge(ctx, now)
	if err != nil {
		log.Printf("[ERROR] token_blacklist cleanup: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[INFO] token_blacklist cleanup removed %d entries", n)
	}
	return n
}
