package communication

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, c *Communication) error
	FindByID(db *gorm.DB, tenantID, id uint) (*Communication, error)
	ListByPhase(db *gorm.DB, tenantID, phaseID uint) ([]Communication, error)
	ListByVendor(db *gorm.DB, tenantID, vendorID uint) ([]Communication, error)
	Update(db *gorm.DB, c *Communication) error
	Delete(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Communication) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, tenantID, id uint) (*Communication, error) {
	var c Communication
	err := db.Where("tenant_id = ?", tenantID).First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListByPhase(db *gorm.DB, tenantID, phaseID uint) ([]Communication, error) {
	var list []Communication
	err := db.
		Where("tenant_id = ? AND phase_id = ?", tenantID, phaseID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListByVendor(db *gorm.DB, tenantID, vendorID uint) ([]Communication, error) {
	var list []Communication
	err := db.
		Where("tenant_id = ? AND vendor_id = ?", tenantID, vendorID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Update(db *gorm.DB, c *Communication) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&Communication{}, id).Error
}
