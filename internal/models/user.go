package models

import "time"

// UserModel represents a platform account.
type UserModel struct {
	Base
	Name            string     `json:"name"            gorm:"not null"`
	Email           string     `json:"email"           gorm:"uniqueIndex;not null"`
	Password        string     `json:"-"               gorm:"not null"`
	Company         string     `json:"company"`
	Bio             string     `json:"bio"             gorm:"type:text"`
	ProfilePicture  string     `json:"profile_picture"`
	Timezone        string     `json:"timezone"        gorm:"default:UTC"`
	Language        string     `json:"language"        gorm:"default:en"`
	Role            string     `json:"role"            gorm:"default:user"` // user | admin
	IsEmailVerified bool       `json:"is_email_verified"`
	LastLoginTime   *time.Time `json:"last_login_time"`
	LastLoginIP     string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }
