package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	CRUD[model.Customer]
	FindByUsername(ctx context.Context, username string) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	// ExistsByEmail ignores the row with excludeID so an update may keep its own email.
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	SearchByName(ctx context.Context, name string) ([]model.Customer, error)
	UpdateRole(ctx context.Context, id uint, role model.CustomerRole) error
}

type customerRepository struct {
	crud[model.Customer]
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{crud[model.Customer]{db: db}}
}

func (r *customerRepository) FindByUsername(ctx context.Context, username string) (*model.Customer, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *customerRepository) SearchByName(ctx context.Context, name string) ([]model.Customer, error) {
	return r.find(ctx, "LOWER(full_name) LIKE LOWER(?)", "%"+name+"%")
}

func (r *customerRepository) UpdateRole(ctx context.Context, id uint, role model.CustomerRole) error {
	result := r.conn(ctx).Model(&model.Customer{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
