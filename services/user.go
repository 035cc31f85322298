package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Phone *string
	Role  *models.UserRole
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies only the supplied fields. Changing the role is admin-only,
// enforced through allowRoleUpdate.
func (s *UserService) Update(id uint, in UpdateUserInput, allowRoleUpdate bool) (*models.User, error) {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = strings.ToLower(*in.Email)
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Role != nil {
		if !allowRoleUpdate {
			return nil, apperr.Forbidden("Only admin can update role")
		}
		if !in.Role.Valid() {
			return nil, apperr.BadRequest("Invalid role. Must be: admin or customer")
		}
		updates["role"] = *in.Role
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("No fields provided to update")
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user unless they still own an active booking.
func (s *UserService) Delete(id uint) error {
	var activeCount int64
	if err := s.db.Model(&models.Booking{}).
		Where("customer_id = ? AND status = ?", id, models.BookingActive).
		Count(&activeCount).Error; err != nil {
		return err
	}
	if activeCount > 0 {
		return apperr.BadRequest("Cannot delete user with active bookings")
	}

	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	log.Printf("[INFO] DeleteUser: deleted user id=%d", id)
	return nil
}
