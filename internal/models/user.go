package models

import "time"

// User is a directory entry. This service only reads users.
type User struct {
	ID        string    `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	FirstName string    `gorm:"column:first_name;type:varchar(255)" json:"firstName"`
	LastName  string    `gorm:"column:last_name;type:varchar(255)" json:"lastName"`
	Status    string    `gorm:"column:status;type:varchar(20);default:active" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
