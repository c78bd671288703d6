package service

import (
	"context"
	"errors"
	"sync"

	"restaurant/auth"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	*auth.TokenPair
	UserID   uint              `json:"user_id"`
	Role     string            `json:"role"`
	UserType model.AccountKind `json:"user_type"`
}

type AuthService struct {
	staff     repository.StaffRepository
	customers repository.CustomerRepository
	issuer    *auth.TokenIssuer
	log       *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(store *repository.Store, issuer *auth.TokenIssuer, log *logger.Logger) *AuthService {
	return &AuthService{
		staff:     store.Staff,
		customers: store.Customers,
		issuer:    issuer,
		log:       log.WithComponent("auth_service"),
	}
}

// Login checks staff accounts first, then customers. Every failure returns ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	member, err := s.staff.FindByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err == nil && auth.CheckPassword(member.PasswordHash, in.Password) {
		return s.issue(member.ID, string(member.Role), model.AccountStaff)
	}

	customer, err := s.customers.FindByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err == nil && auth.CheckPassword(customer.PasswordHash, in.Password) {
		return s.issue(customer.ID, string(customer.Role), model.AccountCustomer)
	}
	if err != nil && member == nil {
		// Unknown user: spend a bcrypt comparison anyway so timing matches a wrong password.
		auth.CheckPassword(s.fallbackHash(), in.Password)
	}

	s.log.Warn("login failed", "username", in.Username)
	return nil, ErrUnauthorized
}

func (s *AuthService) issue(userID uint, role string, kind model.AccountKind) (*LoginResult, error) {
	pair, err := s.issuer.GenerateTokens(userID, role, kind)
	if err != nil {
		return nil, err
	}
	s.log.Info("login succeeded", "user_id", userID, "user_type", kind)
	return &LoginResult{TokenPair: pair, UserID: userID, Role: role, UserType: kind}, nil
}

func (s *AuthService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("not-a-real-password")
	})
	return s.dummyHash
}

// Refresh exchanges a refresh token for a new token pair. The role is read from the
// account again, so promotions and demotions apply without a new login.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.issuer.ValidateToken(refreshToken, auth.RefreshToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	var role string
	switch claims.Kind {
	case model.AccountStaff:
		member, err := s.staff.GetByID(ctx, claims.UserID)
		if err != nil {
			return nil, refreshErr(err)
		}
		role = string(member.Role)
	case model.AccountCustomer:
		customer, err := s.customers.GetByID(ctx, claims.UserID)
		if err != nil {
			return nil, refreshErr(err)
		}
		role = string(customer.Role)
	default:
		return nil, ErrUnauthorized
	}
	return s.issuer.GenerateTokens(claims.UserID, role, claims.Kind)
}

// refreshErr hides deleted accounts behind ErrUnauthorized.
func refreshErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUnauthorized
	}
	return err
}
