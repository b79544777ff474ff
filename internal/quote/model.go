package quote

import (
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/vendor"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusReceived = "RECEIVED"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// Quote is a vendor's price offer for one phase of a project.
type Quote struct {
	gorm.Model

	TenantID uint `gorm:"not null;index" json:"tenantId"`
	PhaseID  uint `gorm:"not null;index" json:"phaseId"`
	VendorID uint `gorm:"not null;index" json:"vendorId"`

	Amount      float64    `gorm:"not null" json:"amount"`
	Currency    string     `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	Description string     `json:"description"`
	Status      string     `gorm:"size:50;not null;default:'PENDING'" json:"status"`
	ReceivedAt  *time.Time `json:"receivedAt"`
	ValidUntil  *time.Time `json:"validUntil"`

	Vendor vendor.Vendor `gorm:"foreignKey:VendorID" json:"vendor"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quote{})
}
