package user

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound    = errors.New("User not found")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrEmailInUse      = errors.New("Email already in use")
)

// UpdateProfileDTO uses pointers so absent fields are left untouched
// while empty strings clear the optional ones.
type UpdateProfileDTO struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Bio      *string `json:"bio"`
	Timezone *string `json:"timezone"`
	Language *string `json:"language"`
}

// UpdateEmailDTO requires the account password to change the address.
type UpdateEmailDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfilePictureDTO carries the hosted image URL.
type ProfilePictureDTO struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// ChangePasswordDTO rotates the account password.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ProfileView is the full profile payload.
type ProfileView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Company        string    `json:"company,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Timezone       string    `json:"timezone"`
	Language       string    `json:"language"`
	CreatedAt      time.Time `json:"created_at"`
}

// SavedContentStats reports stored-content usage against the plan cap.
type SavedContentStats struct {
	Count int64 `json:"count"`
	Limit int   `json:"limit"`
}

// Stats is the usage overview for the authenticated account.
type Stats struct {
	Plan         string            `json:"plan"`
	DailyLimit   int               `json:"daily_limit"`
	UsedToday    int64             `json:"used_today"`
	Remaining    int64             `json:"remaining"`
	SavedContent SavedContentStats `json:"saved_content"`
}
