package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP is an audit record of every one-time code issued, used by the
// cleanup scheduler to purge stale rows.
type OTP struct {
	gorm.Model
	AccountID   uint      `gorm:"not null;index" json:"account_id"`
	AccountRole string    `gorm:"size:10;not null" json:"account_role"` // STUDENT or MENTOR
	Email       string    `gorm:"size:100;index" json:"email"`
	Code        string    `gorm:"size:6;not null" json:"code"`
	Purpose     string    `gorm:"size:20;not null" json:"purpose"` // VERIFY or RESET
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	IsUsed      bool      `gorm:"default:false" json:"is_used"`
	IsDeleted   bool      `gorm:"default:false"`
}
