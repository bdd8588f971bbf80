package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/customeros/notestack/internal/utils"
)

// File is the metadata row of an object held in blob storage
type File struct {
	ID               string    `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Storage          string    `gorm:"column:storage;type:varchar(50);not null" json:"storage"`       // "s3", "r2"
	FilenameDisk     string    `gorm:"column:filename_disk;type:varchar(1000)" json:"filenameDisk"`   // object key
	FilenameDownload string    `gorm:"column:filename_download;type:varchar(500)" json:"filenameDownload"`
	Title            string    `gorm:"column:title;type:varchar(500)" json:"title"`
	Type             string    `gorm:"column:type;type:varchar(255)" json:"type"`
	Filesize         int64     `gorm:"column:filesize;default:0" json:"filesize"`
	UploadedBy       string    `gorm:"column:uploaded_by;type:varchar(50);index" json:"uploadedBy"`
	UploadedOn       time.Time `gorm:"column:uploaded_on;type:timestamp;default:current_timestamp" json:"uploadedOn"`
}

func (File) TableName() string {
	return "files"
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = utils.GenerateNanoIDWithPrefix("file", 16)
	}
	if f.UploadedOn.IsZero() {
		f.UploadedOn = utils.Now()
	}
	return nil
}
