package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"profolio/internal/auth"
)

// AuthHandler 处理向导页的登录请求。
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler 构造 AuthHandler。
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验登录信息；Gmail/GitHub 邮箱首次登录视为注册。
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	token, message, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials. Use a Gmail or GitHub account to register."})
			return
		}
		Internal(c, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "token": token})
}
