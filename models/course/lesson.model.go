package course

import "gorm.io/gorm"

// Lesson content types
const (
	ContentTypeVideo = "video"
	ContentTypeText  = "text"
)

// Lesson belongs to exactly one course and is ordered within it
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	ContentType string `json:"content_type" gorm:"default:'video'"` // video or text
	ContentURL  string `json:"content_url" gorm:"not null"`         // video link or text content
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}
