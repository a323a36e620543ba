package scheduler

import (
	"context"
	"log"
	"time"

	"labcontrol_backend/internals/configs"
	"labcontrol_backend/internals/features/lab/attendance/service"

	"gorm.io/gorm"
)

// The auto-checkout sweep force-closes every session still open at the
// daily deadline, so no session survives a day boundary. It is
// fire-and-forget: a failed run only logs, because the next firing closes
// whatever was left over (at worst one day late).

// StartAutoCheckout launches the daily sweep loop.
func StartAutoCheckout(db *gorm.DB, cfg configs.LabConfig) {
	store := service.NewGormSessionStore(db)
	go func() {
		for {
			next := NextRun(time.Now().In(cfg.Location), cfg)
			time.Sleep(time.Until(next))

			if _, err := Sweep(context.Background(), store, next); err != nil {
				log.Printf("[AUTO-CHECKOUT] sweep failed, retrying at next deadline: %v", err)
			}
		}
	}()
	log.Printf("[AUTO-CHECKOUT] scheduled daily at %02d:%02d %s",
		cfg.DeadlineHour, cfg.DeadlineMinute, cfg.Location)
}

// NextRun returns the next deadline strictly after now, in the lab
// timezone.
func NextRun(now time.Time, cfg configs.LabConfig) time.Time {
	now = now.In(cfg.Location)
	next := time.Date(now.Year(), now.Month(), now.Day(),
		cfg.DeadlineHour, cfg.DeadlineMinute, 0, 0, cfg.Location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Sweep closes every open session with check-in at or before deadline,
// stamping the deadline itself as the check-out. Safe to run repeatedly:
// already-closed sessions are never touched.
func Sweep(ctx context.Context, store service.SessionStore, deadline time.Time) (int64, error) {
	closed, err := store.CloseAllOpenBefore(ctx, deadline)
	if err != nil {
		return 0, err
	}
	if closed > 0 {
		log.Printf("[AUTO-CHECKOUT] closed %d stale session(s) at %s", closed, deadline.Format(time.RFC3339))
	}
	return closed, nil
}
