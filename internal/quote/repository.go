package quote

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, q *Quote) error
	FindByID(db *gorm.DB, tenantID, id uint) (*Quote, error)
	ListByPhase(db *gorm.DB, tenantID, phaseID uint) ([]Quote, error)
	ListByVendor(db *gorm.DB, tenantID, vendorID uint) ([]Quote, error)
	Update(db *gorm.DB, q *Quote) error
	RejectSiblings(db *gorm.DB, phaseID, acceptedID uint) error
	Delete(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, q *Quote) error {
	return db.Create(q).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, tenantID, id uint) (*Quote, error) {
	var q Quote
	err := db.Preload("Vendor").Where("tenant_id = ?", tenantID).First(&q, id).Error
	return &q, err
}

func (r *repositoryImpl) ListByPhase(db *gorm.DB, tenantID, phaseID uint) ([]Quote, error) {
	var list []Quote
	err := db.
		Preload("Vendor").
		Where("tenant_id = ? AND phase_id = ?", tenantID, phaseID).
		Order("received_at DESC NULLS LAST").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListByVendor(db *gorm.DB, tenantID, vendorID uint) ([]Quote, error) {
	var list []Quote
	err := db.
		Where("tenant_id = ? AND vendor_id = ?", tenantID, vendorID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Update(db *gorm.DB, q *Quote) error {
	return db.Save(q).Error
}

// RejectSiblings marks every other non-final quote on the phase rejected
// once one is accepted.
func (r *repositoryImpl) RejectSiblings(db *gorm.DB, phaseID, acceptedID uint) error {
	return db.Model(&Quote{}).
		Where("phase_id = ? AND id <> ? AND status IN ?", phaseID, acceptedID, []string{StatusPending, StatusReceived}).
		Update("status", StatusRejected).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&Quote{}, id).Error
}
