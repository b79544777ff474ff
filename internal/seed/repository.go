package seed

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(s *Seed) error {
	return r.DB.Create(s).Error
}

func (r *Repository) FindByID(tenantID, id uint) (*Seed, error) {
	var s Seed
	if err := r.DB.Where("tenant_id = ?", tenantID).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListByTenant(tenantID uint) ([]Seed, error) {
	var list []Seed
	err := r.DB.
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) Delete(tenantID, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).Delete(&Seed{}, id).Error
}
