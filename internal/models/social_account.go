package models

import (
	"time"
)

// Supported social platforms.
const (
	PlatformTikTok    = "TIKTOK"
	PlatformInstagram = "INSTAGRAM"
	PlatformYouTube   = "YOUTUBE"
	PlatformTwitch    = "TWITCH"
	PlatformX         = "X"
)

// ValidPlatform reports whether the given platform is supported.
func ValidPlatform(platform string) bool {
	switch platform {
	case PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformTwitch, PlatformX:
		return true
	}
	return false
}

// SocialAccount represents a social media account owned by exactly one user.
// Submissions must reference an account owned by the submitting clipper.
type SocialAccount struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_social_accounts_user_platform_username"`
	Platform  string    `json:"platform" gorm:"type:varchar(20);not null;uniqueIndex:idx_social_accounts_user_platform_username"`
	Username  string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex:idx_social_accounts_user_platform_username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the SocialAccount model
func (SocialAccount) TableName() string {
	return "social_accounts"
}

// ConnectAccountRequest represents the request to connect a social account
type ConnectAccountRequest struct {
	Platform string `json:"platform" binding:"required" example:"TIKTOK"`
	Username string `json:"username" binding:"required" example:"@myclips"`
}
