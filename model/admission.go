package model

import (
	"time"
)

// Courses offered by the institute. The admission form only accepts these.
var Courses = []string{
	"Fullstack Development",
	"UI/UX",
	"Graphics Design",
	"Creator Course",
	"Digital Marketing",
	"Web Design",
	"Video Editing",
	"Machine Learning",
	"App Development",
}

// Batches are the class time-slot labels students can be assigned to.
var Batches = []string{"9.30", "10.30", "11.30", "12.30", "1.30", "2.30", "3.30", "4.30", "5.30"}

// Admission represents a student enrollment record
type Admission struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"not null" json:"name"`
	Mobile         string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"mobile"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Qualification  string    `gorm:"not null" json:"qualification"`
	ParentName     string    `gorm:"not null" json:"parent_name"`
	ParentMobile   string    `gorm:"type:varchar(10);not null" json:"parent_mobile"`
	Address        string    `gorm:"type:text;not null" json:"address"`
	Course         string    `gorm:"type:varchar(50);not null" json:"course"`
	ModeOfLearning string    `gorm:"type:varchar(10);not null" json:"mode_of_learning"` // online, offline
	PreferredSlot  string    `gorm:"type:varchar(10);not null" json:"preferred_slot"`   // morning, evening
	Placement      string    `gorm:"type:varchar(5);not null" json:"placement"`         // yes, no
	AttendBy       string    `gorm:"type:varchar(10);not null" json:"attend_by"`        // self, guardian
	Batch          string    `gorm:"type:varchar(10);not null" json:"batch"`
	Date           time.Time `json:"date"`
}

// CourseCount is one bucket of the grouped-by-course aggregation.
type CourseCount struct {
	Course string `json:"course"`
	Count  int64  `json:"count"`
}
