package auth

import (
	"testing"
	"time"

	"restaurant/config"
	"restaurant/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer() *TokenIssuer {
	return NewTokenIssuer(config.Auth{Secret: "test-secret", AccessTTL: time.Minute, RefreshTTL: time.Hour})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateAndValidateTokens(t *testing.T) {
	issuer := newIssuer()

	pair, err := issuer.GenerateTokens(7, string(model.StaffAdmin), model.AccountStaff)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.EqualValues(t, 60, pair.ExpiresIn)

	claims, err := issuer.ValidateToken(pair.AccessToken, AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.IsAdmin())

	_, err = issuer.ValidateToken(pair.AccessToken, RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignAndExpiredTokens(t *testing.T) {
	issuer := newIssuer()
	other := NewTokenIssuer(config.Auth{Secret: "other", AccessTTL: time.Minute, RefreshTTL: time.Hour})

	pair, err := other.GenerateTokens(1, "regular", model.AccountCustomer)
	require.NoError(t, err)
	_, err = issuer.ValidateToken(pair.AccessToken, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := issuer.GenerateTokens(1, "regular", model.AccountCustomer)
	require.NoError(t, err)
	issuer.now = time.Now
	_, err = issuer.ValidateToken(stale.AccessToken, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ValidateToken("not-a-token", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenCarriesIdentity(t *testing.T) {
	issuer := newIssuer()
	pair, err := issuer.GenerateTokens(5, "vip", model.AccountCustomer)
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(pair.RefreshToken, RefreshToken)
	require.NoError(t, err)
	assert.EqualValues(t, 5, claims.UserID)
	assert.Equal(t, model.AccountCustomer, claims.Kind)
	assert.False(t, claims.IsStaff())
}
