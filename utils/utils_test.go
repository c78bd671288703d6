package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/auth"
	"restaurant/config"
	"restaurant/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	protected := router.Group("/", AuthMiddleware(issuer))
	protected.GET("/any", ok)
	protected.GET("/staff", RequireStaff(), ok)
	protected.GET("/admin", RequireAdmin(), ok)
	router.GET("/items/:id", func(c *gin.Context) {
		if _, valid := ParseID(c, "id"); !valid {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	router.GET("/page", func(c *gin.Context) {
		p, err := BindPagination(c)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.JSON(http.StatusOK, p)
	})
	return router
}

func do(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoleGating(t *testing.T) {
	issuer := auth.NewTokenIssuer(config.Auth{Secret: "s", AccessTTL: time.Minute, RefreshTTL: time.Hour})
	router := newRouter(issuer)

	customer, err := issuer.GenerateTokens(1, "regular", model.AccountCustomer)
	require.NoError(t, err)
	waiter, err := issuer.GenerateTokens(2, "waiter", model.AccountStaff)
	require.NoError(t, err)
	admin, err := issuer.GenerateTokens(3, "admin", model.AccountStaff)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(router, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, "/any", customer.RefreshToken).Code)
	assert.Equal(t, http.StatusOK, do(router, "/any", customer.AccessToken).Code)

	assert.Equal(t, http.StatusForbidden, do(router, "/staff", customer.AccessToken).Code)
	assert.Equal(t, http.StatusOK, do(router, "/staff", waiter.AccessToken).Code)

	assert.Equal(t, http.StatusForbidden, do(router, "/admin", waiter.AccessToken).Code)
	assert.Equal(t, http.StatusOK, do(router, "/admin", admin.AccessToken).Code)
}

func TestParseIDAndPagination(t *testing.T) {
	router := newRouter(auth.NewTokenIssuer(config.Auth{Secret: "s", AccessTTL: time.Minute}))

	assert.Equal(t, http.StatusOK, do(router, "/items/4", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, "/items/0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, "/items/abc", "").Code)

	rec := do(router, "/page", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Skip":0,"Limit":100}`, rec.Body.String())

	rec = do(router, "/page?skip=5&limit=10", "")
	assert.JSONEq(t, `{"Skip":5,"Limit":10}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(router, "/page?limit=5000", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, "/page?skip=-1", "").Code)
}
