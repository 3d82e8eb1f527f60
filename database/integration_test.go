package database

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/utils/auth"
	"gorm.io/gorm"
)

// Integration tests against a real Postgres. Requires:
// 1. RUN_INTEGRATION_TESTS=true
// 2. The usual DB_* environment variables pointing at a throwaway database.
func integrationStore(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	store, err := StartGORM()
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store.GetDB().(*gorm.DB)
}

func testAdmission(suffix string) model.Admission {
	return model.Admission{
		Name:           "Integration Test " + suffix,
		Mobile:         fmt.Sprintf("90000%05d", time.Now().UnixNano()%100000),
		Email:          fmt.Sprintf("it-%s-%d@example.com", suffix, time.Now().UnixNano()),
		Qualification:  "B.Sc.",
		ParentName:     "Parent",
		ParentMobile:   "9000000000",
		Address:        "Test Lane",
		Course:         "Fullstack Development",
		ModeOfLearning: "offline",
		PreferredSlot:  "morning",
		Placement:      "yes",
		AttendBy:       "self",
		Batch:          "9.30",
		Date:           time.Now(),
	}
}

func TestDuplicateAdmissionConflicts(t *testing.T) {
	db := integrationStore(t)

	first := testAdmission("dup")
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	t.Cleanup(func() { db.Delete(&model.Admission{}, first.ID) })

	second := testAdmission("dup2")
	second.Email = first.Email // collide on the unique email index

	err := db.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("want gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestDuplicateCheckMatchesEmailOrMobile(t *testing.T) {
	db := integrationStore(t)

	admission := testAdmission("check")
	if err := db.Create(&admission).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	t.Cleanup(func() { db.Delete(&model.Admission{}, admission.ID) })

	exists := func(email, mobile string) bool {
		var count int64
		err := db.Model(&model.Admission{}).
			Where("email = ? OR mobile = ?", email, mobile).
			Count(&count).Error
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		return count > 0
	}

	// Either field alone must match, not just the pair.
	if !exists(admission.Email, "0000000000") {
		t.Error("matching email with a different mobile should report exists")
	}
	if !exists("nobody@example.com", admission.Mobile) {
		t.Error("matching mobile with a different email should report exists")
	}
	if exists("nobody@example.com", "0000000000") {
		t.Error("neither field matching should not report exists")
	}
}

func TestUpdateAdmissionMergesFields(t *testing.T) {
	db := integrationStore(t)

	admission := testAdmission("update")
	if err := db.Create(&admission).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	t.Cleanup(func() { db.Delete(&model.Admission{}, admission.ID) })

	// Partial patch: zero-value fields are skipped, so only the supplied
	// fields replace stored ones.
	patch := model.Admission{Course: "UI/UX", Batch: "11.30"}
	if err := db.Model(&admission).Updates(patch).Error; err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var updated model.Admission
	if err := db.First(&updated, admission.ID).Error; err != nil {
		t.Fatalf("refetch failed: %v", err)
	}

	if updated.Course != "UI/UX" || updated.Batch != "11.30" {
		t.Errorf("patched fields not applied: course=%q batch=%q", updated.Course, updated.Batch)
	}
	if updated.Name != admission.Name || updated.Email != admission.Email {
		t.Errorf("untouched fields changed: name=%q email=%q", updated.Name, updated.Email)
	}

	// Update never duplicates the record.
	var count int64
	if err := db.Model(&model.Admission{}).Where("id = ?", admission.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("want exactly one record for id %d, got %d", admission.ID, count)
	}
}

func TestUserRegistrationRoundTrip(t *testing.T) {
	db := integrationStore(t)

	password := "correct horse battery"
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	user := model.User{
		Name:          "Integration Staff",
		InstituteName: "Test Institute",
		Email:         fmt.Sprintf("it-user-%d@example.com", time.Now().UnixNano()),
		MobileNumber:  "9000000001",
		PasswordHash:  hash,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	t.Cleanup(func() { db.Delete(&model.User{}, user.ID) })

	// Login path: fetch by email, verify the stored hash.
	var found model.User
	if err := db.Where("email = ?", user.Email).First(&found).Error; err != nil {
		t.Fatalf("lookup by email failed: %v", err)
	}
	if err := auth.VerifyPassword(found.PasswordHash, password); err != nil {
		t.Errorf("stored hash should verify the original password: %v", err)
	}
	if err := auth.VerifyPassword(found.PasswordHash, "wrong password!"); !errors.Is(err, auth.ErrPasswordMismatch) {
		t.Errorf("want ErrPasswordMismatch for a wrong password, got %v", err)
	}

	// Registering the same email again must hit the unique index.
	dup := model.User{
		Name:          "Other Staff",
		InstituteName: "Test Institute",
		Email:         user.Email,
		MobileNumber:  "9000000002",
		PasswordHash:  hash,
	}
	if err := db.Create(&dup).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("want gorm.ErrDuplicatedKey for duplicate user email, got %v", err)
	}
}

func TestDeleteAdmissionKeepsAttendance(t *testing.T) {
	db := integrationStore(t)

	admission := testAdmission("orphan")
	if err := db.Create(&admission).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	record := model.Attendance{
		StudentID: admission.ID,
		Date:      time.Now(),
		Status:    model.StatusPresent,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("attendance insert failed: %v", err)
	}
	t.Cleanup(func() { db.Delete(&model.Attendance{}, record.ID) })

	if err := db.Delete(&model.Admission{}, admission.ID).Error; err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The attendance row must survive, with a dangling student id.
	var kept model.Attendance
	if err := db.First(&kept, record.ID).Error; err != nil {
		t.Fatalf("attendance row should survive admission delete: %v", err)
	}
	if kept.StudentID != admission.ID {
		t.Errorf("want student id %d, got %d", admission.ID, kept.StudentID)
	}
}
