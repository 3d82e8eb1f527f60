package model

import (
	"time"
)

// AttendanceStatus is the raw per-record mark.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Attendance is one logged observation of a student's presence on a date.
//
// The log is append-only: records are never updated or deleted, so several
// records may exist for the same (student, day) pair. StudentID is a weak
// reference — deleting the Admission leaves attendance rows orphaned, and
// that is documented behavior, not a bug.
type Attendance struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	StudentID uint             `gorm:"index;not null" json:"student_id"`
	Date      time.Time        `gorm:"index;not null" json:"date"`
	Status    AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`

	// Populated on reads; nil when the admission has been deleted.
	Student *Admission `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
