package service

import (
	"context"
	"errors"

	"restaurant/auth"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

type CreateCustomerInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Phone    string `json:"phone" binding:"max=20"`
}

type UpdateCustomerInput struct {
	Username *string             `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string             `json:"password" binding:"omitempty,min=6"`
	FullName *string             `json:"full_name" binding:"omitempty,max=100"`
	Email    *string             `json:"email" binding:"omitempty,email,max=100"`
	Phone    *string             `json:"phone" binding:"omitempty,max=20"`
	Role     *model.CustomerRole `json:"role"`
}

type CustomerService struct {
	customers repository.CustomerRepository
	log       *logger.Logger
}

func NewCustomerService(customers repository.CustomerRepository, log *logger.Logger) *CustomerService {
	return &CustomerService{customers: customers, log: log.WithComponent("customer_service")}
}

// Create registers a regular customer; VIP status is only granted through a VIP request.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*model.Customer, error) {
	if err := s.ensureUnique(ctx, in.Username, in.Email, 0); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	customer := &model.Customer{
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         model.CustomerRegular,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, storeErr(err, "customer", 0)
	}
	s.log.Info("customer registered", "customer_id", customer.ID)
	return customer, nil
}

func (s *CustomerService) ensureUnique(ctx context.Context, username, email string, selfID uint) error {
	if username != "" {
		existing, err := s.customers.FindByUsername(ctx, username)
		switch {
		case err == nil && existing.ID != selfID:
			return conflict("username %q already registered", username)
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return err
		}
	}
	if email != "" {
		taken, err := s.customers.ExistsByEmail(ctx, email, selfID)
		if err != nil {
			return err
		}
		if taken {
			return conflict("email %q already registered", email)
		}
	}
	return nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	return customer, storeErr(err, "customer", id)
}

func (s *CustomerService) List(ctx context.Context, skip, limit int) ([]model.Customer, error) {
	return s.customers.List(ctx, skip, limit)
}

func (s *CustomerService) Update(ctx context.Context, id uint, in UpdateCustomerInput) (*model.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "customer", id)
	}

	var username, email string
	if in.Username != nil && *in.Username != customer.Username {
		username = *in.Username
	}
	if in.Email != nil && *in.Email != customer.Email {
		email = *in.Email
	}
	if err := s.ensureUnique(ctx, username, email, id); err != nil {
		return nil, err
	}

	if in.Username != nil {
		customer.Username = *in.Username
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.FullName != nil {
		customer.FullName = *in.FullName
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, invalid("unknown customer role %q", *in.Role)
		}
		customer.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = hash
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, storeErr(err, "customer", id)
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.customers.Delete(ctx, id), "customer", id)
}

func (s *CustomerService) GetByUsername(ctx context.Context, username string) (*model.Customer, error) {
	customer, err := s.customers.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundBy("customer", "username", username)
	}
	return customer, err
}

func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	customer, err := s.customers.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundBy("customer", "email", email)
	}
	return customer, err
}

func (s *CustomerService) SearchByName(ctx context.Context, name string) ([]model.Customer, error) {
	return s.customers.SearchByName(ctx, name)
}

func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	return s.customers.Count(ctx)
}
