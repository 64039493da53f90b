package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Mentor struct {
	gorm.Model
	Name              string         `gorm:"not null"`
	Email             string         `gorm:"unique;not null"`
	Password          string         `gorm:"not null"`
	ProfilePicture    string         `gorm:"default:''"`
	Bio               string         `gorm:"type:text"`
	Expertise         datatypes.JSON `json:"expertise"` // JSON array of subject areas
	Experience        int            `gorm:"default:0"` // years
	IsAccountVerified bool           `gorm:"default:false"`
	IsActive          bool           `gorm:"default:true"`

	VerifyOtp         string     `gorm:"size:6;default:''"`
	VerifyOtpExpireAt *time.Time `json:"verify_otp_expire_at"`
	ResetOtp          string     `gorm:"size:6;default:''"`
	ResetOtpExpireAt  *time.Time `json:"reset_otp_expire_at"`

	IsDeleted bool `gorm:"default:false"`
}
