package services

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"casual-jobs-connect/internal/database"
	"casual-jobs-connect/internal/models"
)

// AuthService handles registration and credential checks
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterInput carries the self-service signup fields. Admin accounts
// are never created through registration.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        models.Role
	PhoneNumber string
}

// Register creates a user with a hashed password and an empty profile.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if in.Role != models.RoleEmployer && in.Role != models.RoleWorker {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if in.PhoneNumber != "" {
		user.PhoneNumber = &in.PhoneNumber
	}

	if err := s.db.Create(&user).Error; err != nil {
		// Back the pre-checks with the unique indexes for raced signups.
		if database.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Every account gets a profile shell straight away.
	profile := models.UserProfile{UserID: user.ID}
	if err := s.db.Create(&profile).Error; err != nil {
		log.Printf("Warning: failed to create profile for user %d: %v", user.ID, err)
	}

	return &user, nil
}

// Login checks the credentials and returns the matching active user.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
