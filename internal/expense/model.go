package expense

import (
	"time"

	"gorm.io/gorm"
)

// Expense categories, mirroring the phase types.
const (
	CategoryAccommodation = "ACCOMMODATION"
	CategoryTravel        = "TRAVEL"
	CategoryFood          = "FOOD"
	CategoryActivities    = "ACTIVITIES"
	CategoryInsurance     = "INSURANCE"
	CategoryEmergency     = "EMERGENCY"
	CategoryOther         = "OTHER"
)

// Expense is one recorded vendor cost on a phase. Creating, updating or
// deleting an expense keeps the phase and project budget_spent totals in
// sync.
type Expense struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TenantID  uint `gorm:"not null;index" json:"tenantId"`
	ProjectID uint `gorm:"not null;index" json:"projectId"`
	PhaseID   uint `gorm:"not null;index" json:"phaseId"`

	Amount      float64   `gorm:"not null" json:"amount"`
	Currency    string    `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	ReceiptURL  string    `json:"receiptUrl"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryAccommodation, CategoryTravel, CategoryFood, CategoryActivities,
		CategoryInsurance, CategoryEmergency, CategoryOther:
		return true
	}
	return false
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Expense{})
}
