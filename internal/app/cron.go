package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meritlives/tools-core/internal/models"
	"github.com/meritlives/tools-core/internal/modules/billing"
	pkgcron "github.com/meritlives/tools-core/internal/pkg/cron"
)

// registerCronJobs registers the scheduled maintenance jobs.
func (a *App) registerCronJobs() {
	log := a.logger.Named("cron")
	billingSvc := billing.NewService(a.db)

	a.sched.Register(pkgcron.Job{
		Name:        "expire_subscriptions",
		Description: "Move subscriptions past their paid period or trial window to expired",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			n, err := billingSvc.ExpireLapsed(ctx, time.Now())
			if err != nil {
				log.Warn("subscription expiry sweep failed", zap.Error(err))
				return err
			}
			if n > 0 {
				log.Info("expired lapsed subscriptions", zap.Int64("count", n))
			}
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "cleanup_sessions",
		Description: "Delete sessions expired or revoked more than 30 days ago",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, 0, -30)
			result := a.db.WithContext(ctx).
				Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
				Delete(&models.UserSession{})
			if result.Error != nil {
				log.Warn("session cleanup failed", zap.Error(result.Error))
				return result.Error
			}
			if result.RowsAffected > 0 {
				log.Info("purged stale sessions", zap.Int64("count", result.RowsAffected))
			}
			return nil
		},
	})
}
