package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/middleware"
	"vehicle-rental-api/models"
	"vehicle-rental-api/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UpdateUserRequest struct {
	Name  *string          `json:"name"`
	Email *string          `json:"email"`
	Phone *string          `json:"phone"`
	Role  *models.UserRole `json:"role"`
}

// List returns all users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Users retrieved successfully", users)
}

// Update lets a user edit their own profile, or an admin edit anyone.
// Role changes are admin-only.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "Invalid user id")
	if !ok {
		return
	}

	isAdmin := middleware.GetRole(c) == models.RoleAdmin
	if !isAdmin && middleware.GetUserID(c) != id {
		respondError(c, apperr.Forbidden("You do not have permission to perform this action"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	user, err := h.svc.Update(id, services.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}, isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "User updated successfully", user)
}

// Delete removes a user (admin only, blocked by active bookings)
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "Invalid user id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "User deleted successfully", nil)
}
