package billing

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/meritlives/tools-core/internal/models"
)

// Service owns the subscription lifecycle and the local payment ledger.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// StartTrial opens the 7-day trial for a fresh account. Idempotent: an
// existing subscription row wins.
func (s *Service) StartTrial(ctx context.Context, userID string) (*models.SubscriptionModel, error) {
	var existing models.SubscriptionModel
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, 7)
	sub := models.SubscriptionModel{
		UserID:       userID,
		Plan:         models.PlanTrial,
		Status:       models.SubscriptionTrialing,
		StartDate:    now,
		TrialEndDate: &trialEnd,
	}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Current returns the user's latest subscription row.
func (s *Service) Current(ctx context.Context, userID string) (*models.SubscriptionModel, error) {
	var sub models.SubscriptionModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ApplyPayment records a settled Paystack charge and moves the user onto the
// purchased tier. Safe to call from both verify and the webhook: the payment
// reference is unique, so a duplicate delivery is a no-op.
func (s *Service) ApplyPayment(ctx context.Context, userID string, plan Plan, txn *TransactionData) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior models.PaymentModel
		err := tx.Where("reference = ?", txn.Reference).First(&prior).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		end := now.AddDate(0, 1, 0)
		sub := models.SubscriptionModel{}
		err = tx.Where("user_id = ?", userID).Order("created_at DESC").First(&sub).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sub = models.SubscriptionModel{UserID: userID, StartDate: now}
		case err != nil:
			return err
		}

		sub.Plan = plan.ID
		sub.Status = models.SubscriptionActive
		sub.StartDate = now
		sub.EndDate = &end
		sub.TrialEndDate = nil
		sub.AutoRenew = true
		sub.PaystackReference = txn.Reference
		if txn.Customer.CustomerCode != "" {
			sub.PaystackCustomerCode = txn.Customer.CustomerCode
		}
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		payment := models.PaymentModel{
			UserID:         userID,
			SubscriptionID: sub.ID,
			Reference:      txn.Reference,
			Plan:           plan.ID,
			Amount:         txn.Amount,
			Currency:       "NGN",
			Status:         models.PaymentSuccess,
			Channel:        txn.Channel,
		}
		if paidAt, perr := time.Parse(time.RFC3339, txn.PaidAt); perr == nil {
			payment.PaidAt = &paidAt
		}
		return tx.Create(&payment).Error
	})
}

// Cancel turns off auto-renewal locally. The subscription keeps its paid
// window until EndDate passes.
func (s *Service) Cancel(ctx context.Context, userID string) (*models.SubscriptionModel, error) {
	sub, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	sub.Status = models.SubscriptionCancelled
	sub.AutoRenew = false
	if err := s.db.WithContext(ctx).Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Expire marks a subscription as lapsed after a failed renewal.
func (s *Service) Expire(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"status":     models.SubscriptionExpired,
			"auto_renew": false,
		}).Error
}

// User fetches the account row behind a subscription, used for checkout email.
func (s *Service) User(ctx context.Context, userID string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CancelByCustomerCode handles webhook-driven disables where only the
// Paystack customer code identifies the account.
func (s *Service) CancelByCustomerCode(ctx context.Context, customerCode string) error {
	return s.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("paystack_customer_code = ?", customerCode).
		Updates(map[string]interface{}{
			"status":     models.SubscriptionCancelled,
			"auto_renew": false,
		}).Error
}

// ExpireByCustomerCode lapses a subscription after a failed renewal invoice.
func (s *Service) ExpireByCustomerCode(ctx context.Context, customerCode string) error {
	return s.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("paystack_customer_code = ?", customerCode).
		Updates(map[string]interface{}{
			"status":     models.SubscriptionExpired,
			"auto_renew": false,
		}).Error
}

// ExpireLapsed bulk-expires subscriptions whose paid period or trial
// window has ended. Returns the number of rows moved to expired.
func (s *Service) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	updates := map[string]interface{}{
		"status":     models.SubscriptionExpired,
		"auto_renew": false,
	}

	paid := s.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", models.SubscriptionActive, now).
		Updates(updates)
	if paid.Error != nil {
		return 0, paid.Error
	}

	trials := s.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("status = ? AND trial_end_date IS NOT NULL AND trial_end_date < ?", models.SubscriptionTrialing, now).
		Updates(updates)
	if trials.Error != nil {
		return paid.RowsAffected, trials.Error
	}
	return paid.RowsAffected + trials.RowsAffected, nil
}

// PaymentsQuery returns the user's payment ledger query, newest first.
func (s *Service) PaymentsQuery(ctx context.Context, userID string) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")
}
