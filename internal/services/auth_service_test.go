package services

import (
	"errors"
	"testing"

	"casual-jobs-connect/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	user, err := service.Register(RegisterInput{
		Username: "nguyenvana",
		Email:    "vana@example.com",
		Password: "matkhau123",
		Role:     models.RoleWorker,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "matkhau123" {
		t.Error("password stored in plain text")
	}
	if !user.IsActive {
		t.Error("new account must be active")
	}

	// The profile shell is created alongside the account.
	var profiles int64
	db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&profiles)
	if profiles != 1 {
		t.Errorf("got %d profile rows, want 1", profiles)
	}

	got, err := service.Login("nguyenvana", "matkhau123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("login returned user %d, want %d", got.ID, user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	if _, err := service.Register(RegisterInput{
		Username: "nguyenvanb",
		Email:    "vanb@example.com",
		Password: "matkhau123",
		Role:     models.RoleWorker,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := service.Login("nguyenvanb", "sai-mat-khau"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password: err = %v, want ErrBadCredentials", err)
	}
	if _, err := service.Login("khong-ton-tai", "matkhau123"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown user: err = %v, want ErrBadCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	user, err := service.Register(RegisterInput{
		Username: "bibanned",
		Email:    "banned@example.com",
		Password: "matkhau123",
		Role:     models.RoleWorker,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable failed: %v", err)
	}

	if _, err := service.Login("bibanned", "matkhau123"); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	base := RegisterInput{
		Username: "trung",
		Email:    "trung@example.com",
		Password: "matkhau123",
		Role:     models.RoleEmployer,
	}
	if _, err := service.Register(base); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	dup := base
	dup.Email = "khac@example.com"
	if _, err := service.Register(dup); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate username: err = %v, want ErrUsernameTaken", err)
	}

	dup = base
	dup.Username = "khac"
	if _, err := service.Register(dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	_, err := service.Register(RegisterInput{
		Username: "wannabe",
		Email:    "wannabe@example.com",
		Password: "matkhau123",
		Role:     models.RoleAdmin,
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}
