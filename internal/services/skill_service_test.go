package services

import (
	"errors"
	"testing"

	"casual-jobs-connect/internal/models"
)

func TestAddSkillDeduplicatesByNormalizedName(t *testing.T) {
	db := setupTestDB(t)
	service := NewSkillService(db)
	admin := createUser(t, db, models.RoleAdmin)

	skill, created, err := service.AddSkill(admin.ID, "Pha Chế", "F&B")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !created {
		t.Error("first add must report created")
	}
	if skill.NormalizedName != "pha chế" {
		t.Errorf("normalized name = %q, want lowercased trimmed form", skill.NormalizedName)
	}

	// Same skill under different casing and spacing resolves to the
	// existing row.
	again, created, err := service.AddSkill(admin.ID, "  pha chế ", "F&B")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if created {
		t.Error("second add must not report created")
	}
	if again.ID != skill.ID {
		t.Errorf("second add returned skill %d, want existing %d", again.ID, skill.ID)
	}

	var total int64
	db.Model(&models.Skill{}).Count(&total)
	if total != 1 {
		t.Errorf("catalog has %d rows, want 1", total)
	}
}

func TestAddSkillEmptyName(t *testing.T) {
	db := setupTestDB(t)
	service := NewSkillService(db)
	admin := createUser(t, db, models.RoleAdmin)

	if _, _, err := service.AddSkill(admin.ID, "   ", ""); !errors.Is(err, ErrEmptySkillName) {
		t.Errorf("err = %v, want ErrEmptySkillName", err)
	}
}

func TestToggleSkill(t *testing.T) {
	db := setupTestDB(t)
	service := NewSkillService(db)
	admin := createUser(t, db, models.RoleAdmin)

	skill, _, err := service.AddSkill(admin.ID, "Bưng bê", "")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	toggled, err := service.ToggleSkill(admin.ID, skill.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.IsActive {
		t.Error("skill still active after toggle")
	}

	active, err := service.ActiveSkills()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active catalog has %d entries, want 0", len(active))
	}

	if _, err := service.ToggleSkill(admin.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing skill: err = %v, want ErrNotFound", err)
	}
}

func TestSkillChangesAreAudited(t *testing.T) {
	db := setupTestDB(t)
	service := NewSkillService(db)
	admin := createUser(t, db, models.RoleAdmin)

	skill, _, err := service.AddSkill(admin.ID, "Thu ngân", "")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := service.ToggleSkill(admin.ID, skill.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	var activities []models.AdminActivity
	if err := db.Where("admin_id = ?", admin.ID).Order("id").Find(&activities).Error; err != nil {
		t.Fatalf("load activity failed: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("got %d audit entries, want 2", len(activities))
	}
	if activities[0].Action != models.ActionSkillAdded || activities[1].Action != models.ActionSkillUpdated {
		t.Errorf("audit actions = %s, %s", activities[0].Action, activities[1].Action)
	}
}
