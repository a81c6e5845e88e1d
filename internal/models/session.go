package models

import "time"

// Session records one authenticated login window. It is written once at
// sign-in and updated at most once, when sign-out sets LogoutAt.
type Session struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	UUID        string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"uuid"`
	AccessToken string     `gorm:"type:varchar(500);uniqueIndex;not null" json:"-"`
	UserID      uint       `gorm:"not null;index" json:"-"`
	LoginAt     time.Time  `gorm:"not null" json:"login_at"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	LogoutAt    *time.Time `json:"logout_at,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Session) TableName() string {
	return "user_auth"
}

// Active reports whether the session has neither been signed out nor expired.
func (s *Session) Active(now time.Time) bool {
	return s.LogoutAt == nil && !now.After(s.ExpiresAt)
}
