package budget

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Alert is a configured budget alert: when a project's spent percentage
// reaches Threshold, the recipients are emailed, at most once per dedup
// window.
type Alert struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TenantID  uint `gorm:"not null;index" json:"tenantId"`
	ProjectID uint `gorm:"not null;index" json:"projectId"`

	Threshold       float64    `gorm:"not null;default:80" json:"threshold"`
	EmailRecipients string     `gorm:"not null" json:"emailRecipients"` // comma separated
	Enabled         bool       `gorm:"not null;default:true" json:"enabled"`
	LastTriggeredAt *time.Time `json:"lastTriggeredAt"`
}

// Recipients splits the stored recipient list.
func (a *Alert) Recipients() []string {
	var out []string
	for _, r := range strings.Split(a.EmailRecipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Alert{})
}
