package auth

import (
	"errors"
	"time"
)

var (
	ErrEmailTaken         = errors.New("User with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")
)

// SignupDTO is the registration request body.
type SignupDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Company  string `json:"company"`
}

// LoginDTO is the login request body.
type LoginDTO struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// UserView is the account payload returned by auth endpoints.
type UserView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company,omitempty"`
	Plan            string `json:"plan"`
	IsEmailVerified bool   `json:"is_email_verified"`
	ProfilePicture  string `json:"profile_picture,omitempty"`
}

// SessionView is one row in the active-sessions listing.
type SessionView struct {
	ID         string    `json:"id"`
	IP         string    `json:"ip"`
	UA         string    `json:"ua"`
	Current    bool      `json:"current"`
	LastActive time.Time `json:"last_active"`
	ExpiresAt  time.Time `json:"expires_at"`
}
