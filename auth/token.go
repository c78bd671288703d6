package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant/config"
	"restaurant/model"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims identify an account: Subject holds the account id, Role its staff or customer role.
type Claims struct {
	UserID    uint              `json:"user_id"`
	Role      string            `json:"role"`
	Kind      model.AccountKind `json:"user_type"`
	TokenType TokenType         `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) IsStaff() bool {
	return c.Kind == model.AccountStaff
}

func (c *Claims) IsAdmin() bool {
	return c.IsStaff() && c.Role == string(model.StaffAdmin)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(cfg config.Auth) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

func (i *TokenIssuer) GenerateTokens(userID uint, role string, kind model.AccountKind) (*TokenPair, error) {
	access, err := i.sign(userID, role, kind, AccessToken, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(userID, role, kind, RefreshToken, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(i.accessTTL.Seconds()),
	}, nil
}

func (i *TokenIssuer) sign(userID uint, role string, kind model.AccountKind, typ TokenType, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		Kind:      kind,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// ValidateToken parses tokenString and checks signature, expiry and token type.
func (i *TokenIssuer) ValidateToken(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.TokenType != want {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

