package project

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, p *PipelineProject) error
	FindByID(db *gorm.DB, tenantID, id uint) (*PipelineProject, error)
	ListByTenant(db *gorm.DB, tenantID uint) ([]PipelineProject, error)
	ListActiveByTenant(db *gorm.DB, tenantID uint) ([]PipelineProject, error)
	Update(db *gorm.DB, p *PipelineProject) error
	IncrementSpent(db *gorm.DB, id uint, delta float64) error
	SetCalculatedGrant(db *gorm.DB, tenantID, id uint, total float64) error
	Delete(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, p *PipelineProject) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, tenantID, id uint) (*PipelineProject, error) {
	var p PipelineProject
	err := db.
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order(`"order" ASC`) }).
		Where("tenant_id = ?", tenantID).
		First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListByTenant(db *gorm.DB, tenantID uint) ([]PipelineProject, error) {
	var list []PipelineProject
	err := db.
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order(`"order" ASC`) }).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListActiveByTenant returns every project except cancelled ones, for the
// profit dashboard.
func (r *repositoryImpl) ListActiveByTenant(db *gorm.DB, tenantID uint) ([]PipelineProject, error) {
	var list []PipelineProject
	err := db.
		Where("tenant_id = ? AND status <> ?", tenantID, StatusCancelled).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Update(db *gorm.DB, p *PipelineProject) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) IncrementSpent(db *gorm.DB, id uint, delta float64) error {
	return db.Model(&PipelineProject{}).Where("id = ?", id).
		Update("budget_spent", gorm.Expr("budget_spent + ?", delta)).Error
}

func (r *repositoryImpl) SetCalculatedGrant(db *gorm.DB, tenantID, id uint, total float64) error {
	return db.Model(&PipelineProject{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("erasmus_grant_calculated", total).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&PipelineProject{}, id).Error
}
