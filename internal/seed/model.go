package seed

import "gorm.io/gorm"

// Seed is an AI-generated project idea a tenant can keep around and later
// promote into a real project.
type Seed struct {
	gorm.Model
	TenantID        uint   `gorm:"not null;index" json:"tenantId"`
	CreatedByUserID uint   `json:"createdByUserId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Summary         string `gorm:"type:text;not null" json:"summary"`
	TargetGroup     string `gorm:"size:255" json:"targetGroup"`
	Activities      string `gorm:"type:text" json:"activities"`
	// ApprovalLikelihood is the model's 0-100 estimate of funding odds.
	ApprovalLikelihood int `json:"approvalLikelihood"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Seed{})
}
