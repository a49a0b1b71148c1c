package models

import "time"

// Subscription plan identifiers.
const (
	PlanTrial   = "trial"
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanPro     = "pro"
)

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionTrialing  = "trialing"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// SubscriptionModel tracks a user's plan over time.
type SubscriptionModel struct {
	Base
	UserID               string     `json:"user_id"  gorm:"index;not null"`
	Plan                 string     `json:"plan"     gorm:"default:trial"`
	Status               string     `json:"status"   gorm:"default:trialing"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	TrialEndDate         *time.Time `json:"trial_end_date"`
	AutoRenew            bool       `json:"auto_renew"`
	PaystackCustomerCode string     `json:"-"`
	PaystackReference    string     `json:"-"        gorm:"index"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }

// IsCurrent reports whether the subscription grants access right now.
func (s *SubscriptionModel) IsCurrent(now time.Time) bool {
	switch s.Status {
	case SubscriptionActive:
		return s.EndDate == nil || s.EndDate.After(now)
	case SubscriptionTrialing:
		return s.TrialEndDate == nil || s.TrialEndDate.After(now)
	default:
		return false
	}
}

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// PaymentModel records a Paystack transaction.
type PaymentModel struct {
	Base
	UserID         string     `json:"user_id"   gorm:"index;not null"`
	SubscriptionID string     `json:"subscription_id" gorm:"index"`
	Reference      string     `json:"reference" gorm:"uniqueIndex;not null"`
	Plan           string     `json:"plan"`
	Amount         int64      `json:"amount"` // kobo
	Currency       string     `json:"currency"  gorm:"default:NGN"`
	Status         string     `json:"status"    gorm:"default:pending"`
	Channel        string     `json:"channel"`
	PaidAt         *time.Time `json:"paid_at"`
}

func (PaymentModel) TableName() string { return "payments" }
