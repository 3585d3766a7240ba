package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeDurationHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"08:00", "12:00", "4"},
		{"09:30", "09:45", "0.25"},
		{"10:00", "10:00", "0"},
		// Overnight shift crossing midnight
		{"22:00", "06:00", "8"},
		{"23:30", "00:15", "0.75"},
	}

	for _, tc := range cases {
		got, err := ComputeDurationHours(tc.start, tc.end)
		if err != nil {
			t.Fatalf("ComputeDurationHours(%s, %s) failed: %v", tc.start, tc.end, err)
		}
		want := decimal.RequireFromString(tc.want)
		if !got.Equal(want) {
			t.Errorf("ComputeDurationHours(%s, %s) = %s, want %s", tc.start, tc.end, got, want)
		}
	}
}

func TestComputeDurationHoursInvalidClock(t *testing.T) {
	if _, err := ComputeDurationHours("25:00", "06:00"); err == nil {
		t.Error("expected error for invalid start clock")
	}
	if _, err := ComputeDurationHours("08:00", "8 o'clock"); err == nil {
		t.Error("expected error for invalid end clock")
	}
}

func TestCalculateTotalPayment(t *testing.T) {
	hourly := JobPost{
		PaymentType:   PaymentHourly,
		PaymentAmount: decimal.NewFromInt(50000),
		DurationHours: decimal.NewFromInt(6),
	}
	if got := hourly.CalculateTotalPayment(); !got.Equal(decimal.NewFromInt(300000)) {
		t.Errorf("hourly total = %s, want 300000", got)
	}

	// Fixed and daily amounts are already totals, duration must not
	// multiply them.
	fixed := JobPost{
		PaymentType:   PaymentFixed,
		PaymentAmount: decimal.NewFromInt(200000),
		DurationHours: decimal.NewFromInt(6),
	}
	if got := fixed.CalculateTotalPayment(); !got.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("fixed total = %s, want 200000", got)
	}

	daily := JobPost{
		PaymentType:   PaymentDaily,
		PaymentAmount: decimal.NewFromInt(400000),
		DurationHours: decimal.NewFromInt(8),
	}
	if got := daily.CalculateTotalPayment(); !got.Equal(decimal.NewFromInt(400000)) {
		t.Errorf("daily total = %s, want 400000", got)
	}
}

func TestRequiredSkillsList(t *testing.T) {
	job := JobPost{RequiredSkills: "Pha chế, Phục vụ bàn , ,Lễ tân"}
	got := job.RequiredSkillsList()
	want := []string{"Pha chế", "Phục vụ bàn", "Lễ tân"}
	if len(got) != len(want) {
		t.Fatalf("got %d skills, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skill[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizedSkillsUnion(t *testing.T) {
	profile := UserProfile{
		Skills: []Skill{
			{Name: "Pha chế", NormalizedName: "pha chế"},
			{Name: "Bảo vệ", NormalizedName: "bảo vệ"},
		},
		CustomSkills: "Lái xe,  Nấu Ăn , ",
	}

	got := profile.NormalizedSkills()
	want := []string{"pha chế", "bảo vệ", "lái xe", "nấu ăn"}
	if len(got) != len(want) {
		t.Fatalf("got %d skills, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skill[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoleCapabilities(t *testing.T) {
	if !RoleEmployer.CanPostJobs() || RoleWorker.CanPostJobs() || RoleAdmin.CanPostJobs() {
		t.Error("only employers may post jobs")
	}
	if !RoleWorker.CanApply() || RoleEmployer.CanApply() || RoleAdmin.CanApply() {
		t.Error("only workers may apply")
	}
	if !RoleAdmin.CanModerate() || RoleEmployer.CanModerate() || RoleWorker.CanModerate() {
		t.Error("only admins may moderate")
	}
	if Role("manager").Valid() {
		t.Error("unknown role must not validate")
	}
}
