package phase

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Phase) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(tenantID, id uint) (*Phase, error) {
	var p Phase
	if err := r.DB.Preload("Quotes").Where("tenant_id = ?", tenantID).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListByProject(tenantID, projectID uint) ([]Phase, error) {
	var list []Phase
	err := r.DB.
		Where("tenant_id = ? AND project_id = ?", tenantID, projectID).
		Order(`"order" ASC`).
		Find(&list).Error
	return list, err
}

func (r *Repository) Update(p *Phase) error {
	return r.DB.Save(p).Error
}

// IncrementSpent adjusts the phase's spent total by delta, which may be
// negative when an expense shrinks or disappears.
func (r *Repository) IncrementSpent(id uint, delta float64) error {
	return r.DB.Model(&Phase{}).Where("id = ?", id).
		Update("budget_spent", gorm.Expr("budget_spent + ?", delta)).Error
}

func (r *Repository) Delete(tenantID, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).Delete(&Phase{}, id).Error
}
