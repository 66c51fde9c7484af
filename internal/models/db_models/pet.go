package db_models

import "github.com/google/uuid"

type Pet struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"size:100;not null"`
	OwnerName string    `gorm:"size:100;not null"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	Age       int       `gorm:"not null"`
	Notes     string    `gorm:"size:1000"`
}
