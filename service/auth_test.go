package service_test

import (
	"testing"

	"restaurant/auth"
	"restaurant/model"
	"restaurant/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStaffAndCustomer(t *testing.T) {
	e := newEnv(t)
	member, err := e.staff.Create(e.ctx, service.CreateStaffInput{
		Username: "chef", Password: "kitchen1", FullName: "Head Chef", Email: "chef@example.com", Role: model.StaffChef,
	})
	require.NoError(t, err)
	customer := e.customer(t, "nina")

	result, err := e.auth.Login(e.ctx, service.LoginInput{Username: "chef", Password: "kitchen1"})
	require.NoError(t, err)
	assert.Equal(t, member.ID, result.UserID)
	assert.Equal(t, "chef", result.Role)
	assert.Equal(t, model.AccountStaff, result.UserType)

	claims, err := e.issuer.ValidateToken(result.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, member.ID, claims.UserID)
	assert.True(t, claims.IsStaff())

	result, err = e.auth.Login(e.ctx, service.LoginInput{Username: "nina", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, result.UserID)
	assert.Equal(t, "regular", result.Role)
	assert.Equal(t, model.AccountCustomer, result.UserType)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	e := newEnv(t)
	e.customer(t, "omar")

	_, wrongPassword := e.auth.Login(e.ctx, service.LoginInput{Username: "omar", Password: "nope"})
	_, unknownUser := e.auth.Login(e.ctx, service.LoginInput{Username: "ghost", Password: "nope"})

	require.ErrorIs(t, wrongPassword, service.ErrUnauthorized)
	require.ErrorIs(t, unknownUser, service.ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginFallsThroughToCustomerWithSameUsername(t *testing.T) {
	e := newEnv(t)
	_, err := e.staff.Create(e.ctx, service.CreateStaffInput{
		Username: "pat", Password: "staffpass", FullName: "Pat Staff", Email: "pat.staff@example.com", Role: model.StaffWaiter,
	})
	require.NoError(t, err)
	customer := e.customer(t, "pat")

	result, err := e.auth.Login(e.ctx, service.LoginInput{Username: "pat", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, result.UserID)
	assert.Equal(t, model.AccountCustomer, result.UserType)
}

func TestRefresh(t *testing.T) {
	e := newEnv(t)
	e.customer(t, "quinn")
	result, err := e.auth.Login(e.ctx, service.LoginInput{Username: "quinn", Password: "secret123"})
	require.NoError(t, err)

	pair, err := e.auth.Refresh(e.ctx, result.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	_, err = e.auth.Refresh(e.ctx, result.AccessToken)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestRefreshPicksUpPromotion(t *testing.T) {
	e := newEnv(t)
	customer := e.customer(t, "remy")
	result, err := e.auth.Login(e.ctx, service.LoginInput{Username: "remy", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "regular", result.Role)

	request, err := e.vip.Create(e.ctx, service.CreateVipRequestInput{CustomerID: customer.ID})
	require.NoError(t, err)
	_, err = e.vip.Approve(e.ctx, request.ID)
	require.NoError(t, err)

	pair, err := e.auth.Refresh(e.ctx, result.RefreshToken)
	require.NoError(t, err)
	claims, err := e.issuer.ValidateToken(pair.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "vip", claims.Role)

	require.NoError(t, e.customers.Delete(e.ctx, customer.ID))
	_, err = e.auth.Refresh(e.ctx, result.RefreshToken)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
