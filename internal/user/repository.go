package user

import "gorm.io/gorm"

// Repository wraps database access for users.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(u *User) error {
	return r.DB.Create(u).Error
}

func (r *Repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByID(tenantID, id uint) (*User, error) {
	var u User
	if err := r.DB.Where("tenant_id = ?", tenantID).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) ListByTenant(tenantID uint) ([]User, error) {
	var list []User
	err := r.DB.Where("tenant_id = ?", tenantID).Order("name").Find(&list).Error
	return list, err
}

func (r *Repository) Update(u *User) error {
	return r.DB.Save(u).Error
}

func (r *Repository) Delete(tenantID, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).Delete(&User{}, id).Error
}
