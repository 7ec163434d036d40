package models

import (
	"time"
)

// User roles. Role is fixed at registration; admins are seeded at startup.
const (
	RoleClipper    = "CLIPPER"
	RoleAdvertiser = "ADVERTISER"
	RoleAdmin      = "ADMIN"
)

// User represents a user in the system
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Email        string     `json:"email" gorm:"type:varchar(255);not null;unique;index"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	DisplayName  string     `json:"display_name" gorm:"type:varchar(255)"`
	Role         string     `json:"role" gorm:"type:varchar(20);not null;index;default:'CLIPPER'"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`
	TokenVersion uint       `json:"token_version" gorm:"default:0"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	// Relationships
	RefreshTokens  []RefreshToken  `json:"refresh_tokens,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	SocialAccounts []SocialAccount `json:"social_accounts,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsClipper reports whether the user holds the clipper role.
func (u *User) IsClipper() bool {
	return u.Role == RoleClipper
}

// IsAdvertiser reports whether the user holds the advertiser role.
func (u *User) IsAdvertiser() bool {
	return u.Role == RoleAdvertiser
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
