package budget

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Alert) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByID(tenantID, id uint) (*Alert, error) {
	var a Alert
	if err := r.DB.Where("tenant_id = ?", tenantID).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListEnabledByProject returns the alerts to evaluate after an expense
// lands on the project.
func (r *Repository) ListEnabledByProject(projectID uint) ([]Alert, error) {
	var list []Alert
	err := r.DB.Where("project_id = ? AND enabled = ?", projectID, true).Find(&list).Error
	return list, err
}

func (r *Repository) ListByProject(tenantID, projectID uint) ([]Alert, error) {
	var list []Alert
	err := r.DB.Where("tenant_id = ? AND project_id = ?", tenantID, projectID).Find(&list).Error
	return list, err
}

func (r *Repository) Update(a *Alert) error {
	return r.DB.Save(a).Error
}

func (r *Repository) MarkTriggered(id uint, at time.Time) error {
	return r.DB.Model(&Alert{}).Where("id = ?", id).Update("last_triggered_at", at).Error
}

func (r *Repository) Delete(tenantID, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).Delete(&Alert{}, id).Error
}
