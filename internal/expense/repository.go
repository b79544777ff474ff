package expense

import (
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows an expense listing.
type ListFilter struct {
	ProjectID uint
	PhaseID   uint
	Category  string
	From      *time.Time
	To        *time.Time
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Expense) error {
	return r.DB.Create(e).Error
}

func (r *Repository) FindByID(tenantID, id uint) (*Expense, error) {
	var e Expense
	if err := r.DB.Where("tenant_id = ?", tenantID).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) List(tenantID uint, filter ListFilter) ([]Expense, error) {
	q := r.DB.Where("tenant_id = ?", tenantID)
	if filter.ProjectID != 0 {
		q = q.Where("project_id = ?", filter.ProjectID)
	}
	if filter.PhaseID != 0 {
		q = q.Where("phase_id = ?", filter.PhaseID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}

	var list []Expense
	err := q.Order("date DESC").Find(&list).Error
	return list, err
}

func (r *Repository) Update(e *Expense) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(tenantID, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).Delete(&Expense{}, id).Error
}

// SumByProject returns the expense total per project for the tenant.
// Projects without expenses are simply absent from the map.
func (r *Repository) SumByProject(tenantID uint) (map[uint]float64, error) {
	type row struct {
		ProjectID uint
		Total     float64
	}
	var rows []row
	err := r.DB.Model(&Expense{}).
		Select("project_id, SUM(amount) AS total").
		Where("tenant_id = ?", tenantID).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[uint]float64, len(rows))
	for _, rw := range rows {
		sums[rw.ProjectID] = rw.Total
	}
	return sums, nil
}
