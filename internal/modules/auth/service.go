package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/meritlives/tools-core/internal/models"
	"github.com/meritlives/tools-core/internal/modules/billing"
	sessionpkg "github.com/meritlives/tools-core/internal/pkg/session"
)

const bcryptCost = 12

// dummyHash keeps the login failure path doing a bcrypt compare even
// when no account matches the email.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("tools-core-dummy"), bcryptCost)

// Service owns account registration and session lifecycle.
type Service struct {
	db      *gorm.DB
	billing *billing.Service
	logger  *zap.Logger
}

func NewService(db *gorm.DB, billingSvc *billing.Service, logger *zap.Logger) *Service {
	return &Service{db: db, billing: billingSvc, logger: logger}
}

func sessionTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return 30 * 24 * time.Hour
	}
	return sessionpkg.DefaultTTL
}

// Signup registers an account, opens its trial subscription, and issues
// the first session token.
func (s *Service) Signup(ctx context.Context, dto SignupDTO, ip, ua string) (string, *models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	user := models.UserModel{
		Name:     strings.TrimSpace(dto.Name),
		Email:    email,
		Password: string(hashed),
		Company:  strings.TrimSpace(dto.Company),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", nil, err
	}

	if _, err := s.billing.StartTrial(ctx, user.ID); err != nil {
		s.logger.Error("failed to open trial subscription", zap.String("user_id", user.ID), zap.Error(err))
	}

	token, _, err := sessionpkg.Issue(s.db, user.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login verifies credentials and issues a session-bound token. The same
// error is returned for unknown email and wrong password.
func (s *Service) Login(ctx context.Context, dto LoginDTO, ip, ua string) (string, *models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var user models.UserModel
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(dto.Password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	_ = s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error

	token, _, err := sessionpkg.Issue(s.db, user.ID, ip, ua, sessionTTL(dto.RememberMe))
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout revokes the session the token was bound to.
func (s *Service) Logout(ctx context.Context, userID, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	err := sessionpkg.Revoke(s.db.WithContext(ctx), userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// Me loads the authenticated account.
func (s *Service) Me(ctx context.Context, userID string) (*models.UserModel, error) {
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

// PlanID returns the user's current plan id, defaulting to trial.
func (s *Service) PlanID(ctx context.Context, userID string) string {
	sub, err := s.billing.Current(ctx, userID)
	if err != nil || sub == nil {
		return models.PlanTrial
	}
	return sub.Plan
}

// Sessions lists the user's live sessions.
func (s *Service) Sessions(ctx context.Context, userID, currentSID string) ([]SessionView, error) {
	rows, err := sessionpkg.ListActive(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	views := make([]SessionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, SessionView{
			ID:         row.ID,
			IP:         row.IP,
			UA:         row.UA,
			Current:    row.ID == currentSID,
			LastActive: row.UpdatedAt,
			ExpiresAt:  row.ExpiresAt,
		})
	}
	return views, nil
}

// RevokeSession signs out one session by id.
func (s *Service) RevokeSession(ctx context.Context, userID, sessionID string) error {
	return sessionpkg.Revoke(s.db.WithContext(ctx), userID, sessionID)
}

// RevokeOtherSessions signs the user out everywhere but here.
func (s *Service) RevokeOtherSessions(ctx context.Context, userID, keepSID string) error {
	return sessionpkg.RevokeAllExcept(s.db.WithContext(ctx), userID, keepSID)
}

// View shapes the account payload for auth responses.
func (s *Service) View(ctx context.Context, user *models.UserModel) UserView {
	return UserView{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Company:         user.Company,
		Plan:            s.PlanID(ctx, user.ID),
		IsEmailVerified: user.IsEmailVerified,
		ProfilePicture:  user.ProfilePicture,
	}
}
