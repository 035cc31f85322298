package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/middleware"
	"vehicle-rental-api/models"
	"vehicle-rental-api/services"
)

type AuthHandler struct {
	svc    *services.AuthService
	tokens *middleware.AuthManager
}

func NewAuthHandler(svc *services.AuthService, tokens *middleware.AuthManager) *AuthHandler {
	return &AuthHandler{svc: svc, tokens: tokens}
}

type SignupRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Phone    string          `json:"phone"`
	Role     models.UserRole `json:"role"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new user account
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	user, err := h.svc.Signup(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User registered successfully", gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	})
}

// Signin authenticates a user and returns a JWT with the public profile
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	user, err := h.svc.Signin(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		respondError(c, apperr.Internal("Failed to generate token"))
		return
	}

	respond(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}
