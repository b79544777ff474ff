package project

import (
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"gorm.io/gorm"
)

const (
	TypeStudentExchange = "STUDENT_EXCHANGE"
	TypeTraining        = "TRAINING"
	TypeConference      = "CONFERENCE"
	TypeCustom          = "CUSTOM"
)

const (
	StatusPlanning   = "PLANNING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// PipelineProject is an Erasmus+ project being planned: participants,
// host country, budget totals and the calculated grant figures hang off
// it. A nil ErasmusGrantCalculated means no grant has been calculated
// yet, which is different from a grant of zero.
type PipelineProject struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TenantID        uint   `gorm:"not null;index" json:"tenantId"`
	CreatedByUserID uint   `json:"createdByUserId"`
	Reference       string `gorm:"size:36;uniqueIndex" json:"reference"`

	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Status      string    `gorm:"size:50;not null;default:'PLANNING'" json:"status"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`

	ParticipantCount int    `gorm:"not null" json:"participantCount"`
	ActivityDays     int    `json:"activityDays"`
	TravelDays       int    `json:"travelDays"`
	Location         string `gorm:"size:255" json:"location"`
	OriginCity       string `gorm:"size:100" json:"originCity"`
	HostCountry      string `gorm:"size:2" json:"hostCountry"`

	BudgetTotal float64 `gorm:"not null;default:0" json:"budgetTotal"`
	BudgetSpent float64 `gorm:"not null;default:0" json:"budgetSpent"`

	ErasmusGrantCalculated *float64 `json:"erasmusGrantCalculated"`
	ErasmusGrantActual     *float64 `json:"erasmusGrantActual"`
	EstimatedCosts         *float64 `json:"estimatedCosts"`
	ProfitMargin           *float64 `json:"profitMargin"`

	Phases []phase.Phase `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"phases,omitempty"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PipelineProject{})
}
