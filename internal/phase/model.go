package phase

import (
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/quote"
	"gorm.io/gorm"
)

// Phase types, one per budget/logistics category.
const (
	TypeAccommodation = "ACCOMMODATION"
	TypeTravel        = "TRAVEL"
	TypeFood          = "FOOD"
	TypeActivities    = "ACTIVITIES"
	TypeInsurance     = "INSURANCE"
	TypeEmergency     = "EMERGENCY"
	TypeOther         = "OTHER"
)

const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// Phase is one budget/logistics slice of a pipeline project.
type Phase struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TenantID  uint `gorm:"not null;index" json:"tenantId"`
	ProjectID uint `gorm:"not null;index" json:"projectId"`

	Name            string  `gorm:"size:255;not null" json:"name"`
	Type            string  `gorm:"size:50;not null" json:"type"`
	Order           int     `gorm:"not null;default:0" json:"order"`
	Status          string  `gorm:"size:50;not null;default:'NOT_STARTED'" json:"status"`
	BudgetAllocated float64 `gorm:"not null;default:0" json:"budgetAllocated"`
	BudgetSpent     float64 `gorm:"not null;default:0" json:"budgetSpent"`

	Quotes []quote.Quote `gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE" json:"quotes,omitempty"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Phase{})
}
