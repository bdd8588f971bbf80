package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/customeros/notestack/internal/utils"
)

// Note links a scanned document to its OCR transcript and the address that sent it.
type Note struct {
	ID           string    `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Title        string    `gorm:"column:title;type:varchar(500)" json:"title"`
	OCR          string    `gorm:"column:ocr;type:text" json:"ocr"`
	OriginalScan string    `gorm:"column:original_scan;type:varchar(50);index" json:"originalScan"`
	FromUser     string    `gorm:"column:from_user;type:varchar(255);index" json:"fromUser"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`

	Scan *File `gorm:"foreignKey:OriginalScan;references:ID" json:"-"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = utils.GenerateNanoIDWithPrefix("note", 16)
	}
	n.CreatedAt = utils.Now()
	return nil
}
