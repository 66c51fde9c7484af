package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	// HasAccess flips to true once a checkout completes; nothing resets it.
	HasAccess bool  `gorm:"not null;default:false"`
	Pets      []Pet `gorm:"foreignKey:AccountID"`
}
