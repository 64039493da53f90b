package course

import "gorm.io/gorm"

// Course represents a learning course authored by a mentor
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Level        string `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Price        int    `json:"price" gorm:"default:0"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
