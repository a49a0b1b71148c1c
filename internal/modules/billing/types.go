package billing

import (
	"errors"
	"time"
)

var (
	ErrDailyLimitReached  = errors.New("Daily generation limit reached")
	ErrSavedLimitReached  = errors.New("You have reached your plan limit")
	ErrUnknownPlan        = errors.New("unknown subscription plan")
	ErrTrialNotPurchasable = errors.New("Trial plan does not require payment")
)

// InitializePaymentDTO is the request body for starting a checkout.
type InitializePaymentDTO struct {
	Plan string `json:"plan" binding:"required"`
}

// CheckoutResponse carries the Paystack hosted-page handles back to the client.
type CheckoutResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResponse is returned after a successful transaction verification.
type VerifyResponse struct {
	Plan     string     `json:"plan"`
	Amount   float64    `json:"amount"`
	Customer string     `json:"customer"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`
}

// SubscriptionResponse summarizes the caller's current tier and usage.
type SubscriptionResponse struct {
	Plan            string     `json:"plan"`
	Status          string     `json:"status"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	TrialEndDate    *time.Time `json:"trial_end_date,omitempty"`
	AutoRenew       bool       `json:"auto_renew"`
	DailyUsed       int64      `json:"daily_used"`
	DailyLimit      int        `json:"daily_limit"`
	SavedLimit      int        `json:"saved_limit"`
}

// TransactionRecord is one row of the caller's payment history.
type TransactionRecord struct {
	Reference string     `json:"reference"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	Channel   string     `json:"channel,omitempty"`
}
