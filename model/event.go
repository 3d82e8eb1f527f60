package model

import (
	"time"
)

// Event represents a calendar/scheduling item
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `gorm:"not null" json:"title"`
	Start     time.Time `gorm:"index;not null" json:"start"`
	End       time.Time `json:"end"`
	Slot      string    `gorm:"type:varchar(10)" json:"slot"`
	Batch     string    `gorm:"type:varchar(10)" json:"batch"`
	Course    string    `gorm:"type:varchar(50)" json:"course"`
}
