package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedAdmissions(); err != nil {
		return fmt.Errorf("failed to seed admissions: %w", err)
	}

	if err := s.SeedEvents(); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default staff login from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when either variable is unset.
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Users already exist, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Name:          "Administrator",
		InstituteName: "AdmitDesk Institute",
		Email:         adminEmail,
		MobileNumber:  "9999999999",
		PasswordHash:  passwordHash,
		TokenVersion:  0,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Created admin user: %s\n", admin.Email)
	return nil
}

// SeedAdmissions creates a handful of demo admissions for local development
func (s *Seeder) SeedAdmissions() error {
	var count int64
	if err := s.db.Model(&model.Admission{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admissions already exist, skipping...")
		return nil
	}

	admissions := []model.Admission{
		{
			Name:           "Aarav Sharma",
			Mobile:         "9876543210",
			Email:          "aarav.sharma@example.com",
			Qualification:  "B.Sc. Computer Science",
			ParentName:     "Rakesh Sharma",
			ParentMobile:   "9876500001",
			Address:        "12 MG Road, Indore",
			Course:         "Fullstack Development",
			ModeOfLearning: "offline",
			PreferredSlot:  "morning",
			Placement:      "yes",
			AttendBy:       "guardian",
			Batch:          "9.30",
			Date:           time.Now(),
		},
		{
			Name:           "Priya Verma",
			Mobile:         "9876543211",
			Email:          "priya.verma@example.com",
			Qualification:  "B.Des.",
			ParentName:     "Sunita Verma",
			ParentMobile:   "9876500002",
			Address:        "45 Palasia, Indore",
			Course:         "UI/UX",
			ModeOfLearning: "online",
			PreferredSlot:  "morning",
			Placement:      "yes",
			AttendBy:       "self",
			Batch:          "11.30",
			Date:           time.Now(),
		},
		{
			Name:           "Kabir Singh",
			Mobile:         "9876543212",
			Email:          "kabir.singh@example.com",
			Qualification:  "12th Pass",
			ParentName:     "Harpreet Singh",
			ParentMobile:   "9876500003",
			Address:        "8 Vijay Nagar, Indore",
			Course:         "Digital Marketing",
			ModeOfLearning: "offline",
			PreferredSlot:  "evening",
			Placement:      "no",
			AttendBy:       "guardian",
			Batch:          "2.30",
			Date:           time.Now(),
		},
		{
			Name:           "Meera Iyer",
			Mobile:         "9876543213",
			Email:          "meera.iyer@example.com",
			Qualification:  "M.Sc. Statistics",
			ParentName:     "Raghav Iyer",
			ParentMobile:   "9876500004",
			Address:        "23 Sapna Sangeeta, Indore",
			Course:         "Machine Learning",
			ModeOfLearning: "offline",
			PreferredSlot:  "evening",
			Placement:      "yes",
			AttendBy:       "self",
			Batch:          "4.30",
			Date:           time.Now(),
		},
	}

	for i := range admissions {
		if err := s.db.Create(&admissions[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d admissions\n", len(admissions))
	return nil
}

// SeedEvents creates a demo event a week out so the calendar and the
// reminders list have something to show.
func (s *Seeder) SeedEvents() error {
	var count int64
	if err := s.db.Model(&model.Event{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Events already exist, skipping...")
		return nil
	}

	start := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)
	event := model.Event{
		Title:  "Orientation Session",
		Start:  start,
		End:    start.Add(2 * time.Hour),
		Slot:   "morning",
		Batch:  "9.30",
		Course: "Fullstack Development",
	}

	if err := s.db.Create(&event).Error; err != nil {
		return err
	}

	reminder, err := services.BuildReminder(&event)
	if err != nil {
		return err
	}

	if err := s.db.Create(&reminder).Error; err != nil {
		return err
	}

	log.Println("✅ Created demo event and reminder")
	return nil
}

// RunSeeds is a convenience function to run all seeds
func RunSeeds(db *gorm.DB) error {
	seeder := NewSeeder(db)
	return seeder.SeedAll()
}
