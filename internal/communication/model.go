package communication

import (
	"time"

	"gorm.io/gorm"
)

const (
	DirectionOutbound = "OUTBOUND"
	DirectionInbound  = "INBOUND"
)

// Communication is one logged exchange with a vendor about a phase:
// an email sent, a reply received, a phone call noted.
type Communication struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TenantID  uint   `gorm:"not null;index" json:"tenantId"`
	PhaseID   *uint  `gorm:"index" json:"phaseId"`
	VendorID  *uint  `gorm:"index" json:"vendorId"`
	Direction string `gorm:"size:20;not null;default:'OUTBOUND'" json:"direction"`
	Subject   string `gorm:"size:255" json:"subject"`
	Body      string `gorm:"not null" json:"body"`
	AuthorID  uint   `json:"authorId"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Communication{})
}
