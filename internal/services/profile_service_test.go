package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"casual-jobs-connect/internal/models"
)

func TestGetOrCreateProfile(t *testing.T) {
	db := setupTestDB(t)
	service := NewProfileService(db)
	worker := createUser(t, db, models.RoleWorker)

	profile, err := service.GetOrCreate(worker.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if profile.UserID != worker.ID {
		t.Errorf("profile user = %d, want %d", profile.UserID, worker.ID)
	}

	// A second call returns the same row, not another shell.
	again, err := service.GetOrCreate(worker.ID)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.ID != profile.ID {
		t.Errorf("second get returned profile %d, want %d", again.ID, profile.ID)
	}
}

func TestUpdateProfileWithSkills(t *testing.T) {
	db := setupTestDB(t)
	service := NewProfileService(db)
	worker := createUser(t, db, models.RoleWorker)

	barista := models.Skill{Name: "Pha chế", IsActive: true}
	waiter := models.Skill{Name: "Phục vụ", IsActive: true}
	inactive := models.Skill{Name: "Cũ", IsActive: false}
	for _, s := range []*models.Skill{&barista, &waiter, &inactive} {
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed skill failed: %v", err)
		}
	}
	// Skill.IsActive carries gorm's default:true, so Create skips the
	// zero-value false; force the flag off explicitly.
	if err := db.Model(&inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("seed skill failed: %v", err)
	}

	rate := decimal.NewFromInt(45000)
	profile, err := service.Update(worker.ID, ProfileInput{
		Bio:          "Sinh viên năm ba",
		SkillIDs:     []uint{barista.ID, waiter.ID, inactive.ID},
		CustomSkills: "Rửa xe, Trông trẻ",
		HourlyRate:   &rate,
		IsAvailable:  true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// Inactive catalog entries are dropped silently.
	if len(profile.Skills) != 2 {
		t.Errorf("got %d catalog skills, want 2", len(profile.Skills))
	}

	names := profile.SkillNames()
	if len(names) != 4 {
		t.Errorf("skill names = %v, want catalog plus custom tokens", names)
	}

	normalized := profile.NormalizedSkills()
	found := false
	for _, n := range normalized {
		if n == "rửa xe" {
			found = true
		}
	}
	if !found {
		t.Errorf("normalized skills = %v, want lowercased custom token", normalized)
	}
}

func TestUpdateProfileReplacesSkills(t *testing.T) {
	db := setupTestDB(t)
	service := NewProfileService(db)
	worker := createUser(t, db, models.RoleWorker)

	first := models.Skill{Name: "Bảo vệ", IsActive: true}
	second := models.Skill{Name: "Giao hàng", IsActive: true}
	for _, s := range []*models.Skill{&first, &second} {
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed skill failed: %v", err)
		}
	}

	if _, err := service.Update(worker.ID, ProfileInput{SkillIDs: []uint{first.ID}, IsAvailable: true}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	profile, err := service.Update(worker.ID, ProfileInput{SkillIDs: []uint{second.ID}, IsAvailable: true})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if len(profile.Skills) != 1 || profile.Skills[0].ID != second.ID {
		t.Errorf("skills not replaced, got %v", profile.Skills)
	}
}

func TestUpdateProfileContactConflicts(t *testing.T) {
	db := setupTestDB(t)
	service := NewProfileService(db)
	worker := createUser(t, db, models.RoleWorker)
	other := createUser(t, db, models.RoleWorker)

	phone := "0901234567"
	if err := db.Model(other).Updates(map[string]interface{}{
		"email":        "taken@example.com",
		"phone_number": phone,
	}).Error; err != nil {
		t.Fatalf("seed contact failed: %v", err)
	}

	if _, err := service.Update(worker.ID, ProfileInput{Email: "taken@example.com"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
	if _, err := service.Update(worker.ID, ProfileInput{PhoneNumber: phone}); !errors.Is(err, ErrPhoneTaken) {
		t.Errorf("err = %v, want ErrPhoneTaken", err)
	}

	// Keeping your own contact details is not a conflict.
	if _, err := service.Update(worker.ID, ProfileInput{Email: worker.Email}); err != nil {
		t.Errorf("self email update failed: %v", err)
	}

	if _, err := service.Update(worker.ID, ProfileInput{Email: "moi@example.com", PhoneNumber: "0907654321"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var got models.User
	if err := db.First(&got, worker.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Email != "moi@example.com" {
		t.Errorf("email = %q, want updated value", got.Email)
	}
	if got.PhoneNumber == nil || *got.PhoneNumber != "0907654321" {
		t.Errorf("phone not updated")
	}
}
