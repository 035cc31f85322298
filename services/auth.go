package services

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     models.UserRole
}

// Signup creates a new account. The role defaults to customer and the email
// is stored lowercase so lookups are case-insensitive.
func (s *AuthService) Signup(in SignupInput) (*models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !role.Valid() {
		return nil, apperr.BadRequest("Invalid role. Must be: admin or customer")
	}

	email := strings.ToLower(in.Email)

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperr.BadRequest("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Signup: failed to create user %s: %v", email, err)
		return nil, err
	}

	log.Printf("[INFO] Signup: created user %s (id=%d, role=%s)", user.Email, user.ID, user.Role)
	return &user, nil
}

// Signin verifies credentials and returns the user. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Signin(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.BadRequest("Invalid email or password")
	}

	return &user, nil
}
