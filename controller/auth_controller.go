package controller

import (
	"net/http"

	"restaurant/logger"
	"restaurant/service"
	"restaurant/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *service.AuthService
	log  *logger.Logger
}

func NewAuthController(auth *service.AuthService, log *logger.Logger) *AuthController {
	return &AuthController{auth: auth, log: log.WithComponent("auth_controller")}
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	result, err := ctl.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Login successful", result)
}

func (ctl *AuthController) Refresh(c *gin.Context) {
	type Request struct {
		RefreshToken string `form:"refresh_token" json:"refresh_token" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusUnauthorized, "Refresh token is required")
		return
	}

	pair, err := ctl.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Tokens refreshed", pair)
}

func (ctl *AuthController) Me(c *gin.Context) {
	claims, found := utils.ClaimsFromContext(c)
	if !found {
		fail(c, http.StatusUnauthorized, "Unauthorized access")
		return
	}
	ok(c, "Current account", gin.H{
		"user_id":    claims.UserID,
		"role":       claims.Role,
		"user_type":  claims.Kind,
		"expires_at": claims.ExpiresAt,
	})
}
