package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/meritlives/tools-core/internal/models"
	"github.com/meritlives/tools-core/internal/modules/billing"
	"github.com/meritlives/tools-core/internal/modules/toolcontent"
	sessionpkg "github.com/meritlives/tools-core/internal/pkg/session"
)

const bcryptCost = 12

// Service manages account profiles and usage statistics.
type Service struct {
	db      *gorm.DB
	billing *billing.Service
	usage   *billing.UsageService
	store   *toolcontent.Service
}

func NewService(db *gorm.DB, billingSvc *billing.Service, usage *billing.UsageService, store *toolcontent.Service) *Service {
	return &Service{db: db, billing: billingSvc, usage: usage, store: store}
}

func (s *Service) load(ctx context.Context, userID string) (*models.UserModel, error) {
	var user models.UserModel
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Profile returns the account's full profile.
func (s *Service) Profile(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := profileView(user)
	return &view, nil
}

func profileView(user *models.UserModel) ProfileView {
	return ProfileView{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Company:        user.Company,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Timezone:       user.Timezone,
		Language:       user.Language,
		CreatedAt:      user.CreatedAt,
	}
}

// applyProfileUpdates mutates only the fields present in the request.
// Name, timezone, and language ignore empty strings; company and bio
// may be cleared.
func applyProfileUpdates(user *models.UserModel, dto UpdateProfileDTO) {
	if dto.Name != nil && strings.TrimSpace(*dto.Name) != "" {
		user.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Company != nil {
		user.Company = strings.TrimSpace(*dto.Company)
	}
	if dto.Bio != nil {
		user.Bio = strings.TrimSpace(*dto.Bio)
	}
	if dto.Timezone != nil && strings.TrimSpace(*dto.Timezone) != "" {
		user.Timezone = strings.TrimSpace(*dto.Timezone)
	}
	if dto.Language != nil && strings.TrimSpace(*dto.Language) != "" {
		user.Language = strings.TrimSpace(*dto.Language)
	}
}

// UpdateProfile applies a partial profile update.
func (s *Service) UpdateProfile(ctx context.Context, userID string, dto UpdateProfileDTO) (*ProfileView, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdates(user, dto)
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	view := profileView(user)
	return &view, nil
}

// UpdateEmail changes the login email after re-verifying the password.
// The new address starts unverified.
func (s *Service) UpdateEmail(ctx context.Context, userID string, dto UpdateEmailDTO) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return ErrInvalidPassword
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	var count int64
	err = s.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailInUse
	}

	return s.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"email":             email,
		"is_email_verified": false,
	}).Error
}

// UpdatePicture stores the hosted profile image URL.
func (s *Service) UpdatePicture(ctx context.Context, userID, imageURL string) (string, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("profile_picture", imageURL).Error; err != nil {
		return "", err
	}
	return imageURL, nil
}

// ChangePassword rotates the password and signs out every other session.
func (s *Service) ChangePassword(ctx context.Context, userID, currentSID string, dto ChangePasswordDTO) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.CurrentPassword)) != nil {
		return ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("password", string(hashed)).Error; err != nil {
		return err
	}
	return sessionpkg.RevokeAllExcept(s.db.WithContext(ctx), userID, currentSID)
}

// UsageStats summarizes plan, daily usage, and stored content.
func (s *Service) UsageStats(ctx context.Context, userID string) (*Stats, error) {
	plan := s.usage.CurrentPlan(ctx, userID)
	used := s.usage.UsedToday(ctx, userID)

	remaining := int64(billing.Unlimited)
	if plan.DailyGenerations != billing.Unlimited {
		remaining = int64(plan.DailyGenerations) - used
		if remaining < 0 {
			remaining = 0
		}
	}

	saved, err := s.store.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Plan:       plan.ID,
		DailyLimit: plan.DailyGenerations,
		UsedToday:  used,
		Remaining:  remaining,
		SavedContent: SavedContentStats{
			Count: saved,
			Limit: plan.SavedContent,
		},
	}, nil
}

// Export collects the account's data for a takeout download.
func (s *Service) Export(ctx context.Context, userID string) (map[string]interface{}, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	export := map[string]interface{}{
		"profile":     profileView(user),
		"export_date": time.Now().UTC(),
	}

	if sub, err := s.billing.Current(ctx, userID); err == nil {
		export["subscription"] = sub
	}
	if content, _, err := s.store.List(ctx, userID, "", false, 1, 100); err == nil {
		export["content"] = content
	}
	return export, nil
}
