package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	CRUD[model.Staff]
	FindByUsername(ctx context.Context, username string) (*model.Staff, error)
	FindByEmail(ctx context.Context, email string) (*model.Staff, error)
	FindByRole(ctx context.Context, role model.StaffRole) ([]model.Staff, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	SearchByName(ctx context.Context, name string) ([]model.Staff, error)
}

type staffRepository struct {
	crud[model.Staff]
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{crud[model.Staff]{db: db}}
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*model.Staff, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *staffRepository) FindByRole(ctx context.Context, role model.StaffRole) ([]model.Staff, error) {
	return r.find(ctx, "role = ?", role)
}

func (r *staffRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username, 0)
}

func (r *staffRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *staffRepository) SearchByName(ctx context.Context, name string) ([]model.Staff, error) {
	return r.find(ctx, "LOWER(full_name) LIKE LOWER(?)", "%"+name+"%")
}
