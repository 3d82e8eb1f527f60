package model

import (
	"time"

	"gorm.io/datatypes"
)

// Reminder is the satellite record created one day before an event's start.
//
// It keeps no foreign key to the event: updating or deleting the event never
// touches its reminder. Metadata carries a snapshot of the event at creation
// time so the calendar can still label an orphaned reminder.
type Reminder struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Title     string         `gorm:"not null" json:"title"`
	Start     time.Time      `gorm:"index;not null" json:"start"`
	End       time.Time      `json:"end"`
	AllDay    bool           `gorm:"default:true" json:"all_day"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// ReminderMetadata is the event snapshot serialized into Reminder.Metadata.
type ReminderMetadata struct {
	EventID    uint      `json:"event_id"`
	EventTitle string    `json:"event_title"`
	EventStart time.Time `json:"event_start"`
}
