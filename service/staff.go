package service

import (
	"context"
	"errors"
	"time"

	"restaurant/auth"
	"restaurant/config"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"

	"github.com/shopspring/decimal"
)

var defaultSalary = decimal.RequireFromString("5000.00")

type CreateStaffInput struct {
	Username string           `json:"username" binding:"required,min=3,max=50"`
	Password string           `json:"password" binding:"required,min=6"`
	FullName string           `json:"full_name" binding:"required,max=100"`
	Email    string           `json:"email" binding:"required,email,max=100"`
	Phone    string           `json:"phone" binding:"max=20"`
	Role     model.StaffRole  `json:"role" binding:"required"`
	Salary   *decimal.Decimal `json:"salary"`
	HireDate *time.Time       `json:"hire_date"`
}

type UpdateStaffInput struct {
	Username *string          `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string          `json:"password" binding:"omitempty,min=6"`
	FullName *string          `json:"full_name" binding:"omitempty,max=100"`
	Email    *string          `json:"email" binding:"omitempty,email,max=100"`
	Phone    *string          `json:"phone" binding:"omitempty,max=20"`
	Role     *model.StaffRole `json:"role"`
	Salary   *decimal.Decimal `json:"salary"`
	HireDate *time.Time       `json:"hire_date"`
}

type StaffService struct {
	staff repository.StaffRepository
	log   *logger.Logger
}

func NewStaffService(staff repository.StaffRepository, log *logger.Logger) *StaffService {
	return &StaffService{staff: staff, log: log.WithComponent("staff_service")}
}

func (s *StaffService) Create(ctx context.Context, in CreateStaffInput) (*model.Staff, error) {
	if !in.Role.Valid() {
		return nil, invalid("unknown staff role %q", in.Role)
	}
	salary := defaultSalary
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, invalid("salary must not be negative")
		}
		salary = *in.Salary
	}
	hireDate := time.Now()
	if in.HireDate != nil {
		hireDate = *in.HireDate
	}
	if err := s.ensureUnique(ctx, in.Username, in.Email, 0); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	member := &model.Staff{
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		Salary:       salary,
		HireDate:     hireDate,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, storeErr(err, "staff", 0)
	}
	s.log.Info("staff member created", "staff_id", member.ID, "role", member.Role)
	return member, nil
}

func (s *StaffService) ensureUnique(ctx context.Context, username, email string, selfID uint) error {
	if username != "" {
		existing, err := s.staff.FindByUsername(ctx, username)
		switch {
		case err == nil && existing.ID != selfID:
			return conflict("username %q already registered", username)
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return err
		}
	}
	if email != "" {
		taken, err := s.staff.ExistsByEmail(ctx, email, selfID)
		if err != nil {
			return err
		}
		if taken {
			return conflict("email %q already registered", email)
		}
	}
	return nil
}

func (s *StaffService) Get(ctx context.Context, id uint) (*model.Staff, error) {
	member, err := s.staff.GetByID(ctx, id)
	return member, storeErr(err, "staff", id)
}

func (s *StaffService) List(ctx context.Context, skip, limit int) ([]model.Staff, error) {
	return s.staff.List(ctx, skip, limit)
}

func (s *StaffService) Update(ctx context.Context, id uint, in UpdateStaffInput) (*model.Staff, error) {
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "staff", id)
	}

	var username, email string
	if in.Username != nil && *in.Username != member.Username {
		username = *in.Username
	}
	if in.Email != nil && *in.Email != member.Email {
		email = *in.Email
	}
	if err := s.ensureUnique(ctx, username, email, id); err != nil {
		return nil, err
	}

	if in.Username != nil {
		member.Username = *in.Username
	}
	if in.Email != nil {
		member.Email = *in.Email
	}
	if in.FullName != nil {
		member.FullName = *in.FullName
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, invalid("unknown staff role %q", *in.Role)
		}
		member.Role = *in.Role
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, invalid("salary must not be negative")
		}
		member.Salary = *in.Salary
	}
	if in.HireDate != nil {
		member.HireDate = *in.HireDate
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = hash
	}

	if err := s.staff.Update(ctx, member); err != nil {
		return nil, storeErr(err, "staff", id)
	}
	return member, nil
}

func (s *StaffService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.staff.Delete(ctx, id), "staff", id)
}

func (s *StaffService) GetByUsername(ctx context.Context, username string) (*model.Staff, error) {
	member, err := s.staff.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundBy("staff", "username", username)
	}
	return member, err
}

func (s *StaffService) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	member, err := s.staff.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundBy("staff", "email", email)
	}
	return member, err
}

func (s *StaffService) FindByRole(ctx context.Context, role model.StaffRole) ([]model.Staff, error) {
	if !role.Valid() {
		return nil, invalid("unknown staff role %q", role)
	}
	return s.staff.FindByRole(ctx, role)
}

func (s *StaffService) SearchByName(ctx context.Context, name string) ([]model.Staff, error) {
	return s.staff.SearchByName(ctx, name)
}

func (s *StaffService) Count(ctx context.Context) (int64, error) {
	return s.staff.Count(ctx)
}

// EnsureAdmin creates the configured admin account unless its username already exists.
func (s *StaffService) EnsureAdmin(ctx context.Context, cfg config.Admin) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}
	exists, err := s.staff.ExistsByUsername(ctx, cfg.Username)
	if err != nil || exists {
		return err
	}

	email := cfg.Email
	if email == "" {
		email = cfg.Username + "@restaurant.local"
	}
	_, err = s.Create(ctx, CreateStaffInput{
		Username: cfg.Username,
		Password: cfg.Password,
		FullName: "Administrator",
		Email:    email,
		Role:     model.StaffAdmin,
	})
	return err
}
