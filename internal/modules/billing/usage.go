package billing

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/meritlives/tools-core/internal/models"
	pkgredis "github.com/meritlives/tools-core/internal/pkg/redis"
)

const usageKeyPrefix = "ml:usage:"

// UsageService enforces per-plan daily generation quotas. Counters live in
// Redis under a per-user per-day key and expire on their own.
type UsageService struct {
	db *gorm.DB
	rc *pkgredis.Client
}

func NewUsageService(db *gorm.DB, rc *pkgredis.Client) *UsageService {
	return &UsageService{db: db, rc: rc}
}

func usageKey(userID string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s", usageKeyPrefix, userID, day.UTC().Format("2006-01-02"))
}

// CurrentPlan resolves the user's active tier, falling back to trial when no
// subscription row exists or the current one has lapsed.
func (s *UsageService) CurrentPlan(ctx context.Context, userID string) Plan {
	var sub models.SubscriptionModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		p, _ := PlanByID(models.PlanTrial)
		return p
	}
	if !sub.IsCurrent(time.Now()) {
		p, _ := PlanByID(models.PlanTrial)
		return p
	}
	p, ok := PlanByID(sub.Plan)
	if !ok {
		p, _ = PlanByID(models.PlanTrial)
	}
	return p
}

// Consume spends one generation from today's quota. Returns
// ErrDailyLimitReached once the plan cap is hit; unlimited plans never fail.
func (s *UsageService) Consume(ctx context.Context, userID string) error {
	plan := s.CurrentPlan(ctx, userID)
	if plan.DailyGenerations == Unlimited {
		return nil
	}

	n, err := s.rc.IncrWithTTL(ctx, usageKey(userID, time.Now()), 48*time.Hour)
	if err != nil {
		// Redis down: let the generation through rather than blocking paying users.
		return nil
	}
	if n > int64(plan.DailyGenerations) {
		return ErrDailyLimitReached
	}
	return nil
}

// UsedToday reads the current counter without touching it.
func (s *UsageService) UsedToday(ctx context.Context, userID string) int64 {
	n, err := s.rc.GetInt(ctx, usageKey(userID, time.Now()))
	if err != nil {
		return 0
	}
	return n
}

// SavedContentLimit returns the plan's cap on stored generations,
// Unlimited (-1) for the top tiers.
func (s *UsageService) SavedContentLimit(ctx context.Context, userID string) int {
	return s.CurrentPlan(ctx, userID).SavedContent
}
