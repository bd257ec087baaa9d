package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
	"github.com/oksasatya/go-ddd-blog-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email_id" binding:"required,notblank"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	UserID   int64  `json:"user_id" binding:"required,id"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "name, email_id and password are required", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"user_id": id}, "user registered", nil)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "user_id and password are required", validation.ToDetails(err))
		return
	}
	s, err := h.Svc.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"token": s.Token, "expires_at": s.ExpiresAt}, "login successful", nil)
}

const welcomeDescription = "Write and view blogs, comment and like at others blogs with these APIs!"

// Welcome GET /
func Welcome(appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, http.StatusOK, gin.H{
			"message":     "Hello! Welcome to " + appName + "!",
			"description": welcomeDescription,
		}, "welcome to "+appName, nil)
	}
}
