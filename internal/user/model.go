package user

import (
	"time"

	"gorm.io/gorm"
)

// User is an account in one tenant organisation.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TenantID     uint   `gorm:"not null;index" json:"tenantId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"isAdmin"`

	MustResetPassword bool `gorm:"not null;default:false" json:"mustResetPassword"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
