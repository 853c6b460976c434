package schedule

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Sweep deletes lessons dated before the retention horizon. It runs inline
// before listing reads; a failure is logged and swallowed so housekeeping
// never fails the enclosing read.
func (e *Engine) Sweep(ctx context.Context, now time.Time) {
	cutoff := now.AddDate(0, 0, -RetentionDays).Format(DateLayout)
	deleted, err := e.Lessons.DeleteBefore(ctx, cutoff)
	if err != nil {
		log.WithError(err).WithField("cutoff", cutoff).Warn("lesson retention sweep failed")
		return
	}
	if deleted > 0 {
		log.WithFields(log.Fields{"cutoff": cutoff, "deleted": deleted}).Info("purged lessons past retention horizon")
	}
}
