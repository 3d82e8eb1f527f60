package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/admitdesk/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventService persists calendar events and their satellite reminders.
type EventService struct {
	db *gorm.DB
}

// NewEventService creates a new event service
func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// BuildReminder derives the satellite reminder for an event: same titled item
// scheduled one day before the event's start, flagged all-day.
func BuildReminder(event *model.Event) (model.Reminder, error) {
	reminderDate := event.Start.AddDate(0, 0, -1)

	meta, err := json.Marshal(model.ReminderMetadata{
		EventID:    event.ID,
		EventTitle: event.Title,
		EventStart: event.Start,
	})
	if err != nil {
		return model.Reminder{}, err
	}

	return model.Reminder{
		Title:    "Reminder: " + event.Title,
		Start:    reminderDate,
		End:      reminderDate,
		AllDay:   true,
		Metadata: datatypes.JSON(meta),
	}, nil
}

// CreateEvent persists the event and then creates its reminder.
//
// The two writes are deliberately not coupled: if the reminder insert fails
// the event is kept and the failure only logged. Updating or deleting an
// event later never touches the reminder.
func (s *EventService) CreateEvent(ctx context.Context, event *model.Event) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return err
	}

	reminder, err := BuildReminder(event)
	if err == nil {
		err = s.db.WithContext(ctx).Create(&reminder).Error
	}
	if err != nil {
		log.Printf("reminder creation failed for event %d: %v", event.ID, err)
	}

	return nil
}

// ListEvents returns all events.
func (s *EventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := s.db.WithContext(ctx).Find(&events).Error
	return events, err
}

// UpcomingEvents returns events starting today or later, soonest first.
func (s *EventService) UpcomingEvents(ctx context.Context, now time.Time) ([]model.Event, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var events []model.Event
	err := s.db.WithContext(ctx).
		Where("start >= ?", today).
		Order("start ASC").
		Find(&events).Error
	return events, err
}

// UpdateEvent replaces the supplied fields of an event and returns the
// updated document. The reminder created alongside it is left untouched.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, patch map[string]interface{}) (*model.Event, error) {
	var event model.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&event).Updates(patch).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes the event only; its reminder is orphaned by design.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListReminders returns all reminders for the calendar view.
func (s *EventService) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := s.db.WithContext(ctx).Find(&reminders).Error
	return reminders, err
}
