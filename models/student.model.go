package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	gorm.Model
	Name              string `gorm:"not null"`
	Email             string `gorm:"unique;not null"`
	Password          string `gorm:"not null"`
	ProfilePicture    string `gorm:"default:''"`
	IsAccountVerified bool   `gorm:"default:false"`

	VerifyOtp         string     `gorm:"size:6;default:''"`
	VerifyOtpExpireAt *time.Time `json:"verify_otp_expire_at"`
	ResetOtp          string     `gorm:"size:6;default:''"`
	ResetOtpExpireAt  *time.Time `json:"reset_otp_expire_at"`

	IsDeleted bool `gorm:"default:false"`
}
