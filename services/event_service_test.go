package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/admitdesk/api/model"
)

func TestBuildReminder(t *testing.T) {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	event := model.Event{
		ID:    42,
		Title: "Demo Day",
		Start: start,
		End:   start.Add(2 * time.Hour),
	}

	reminder, err := BuildReminder(&event)
	if err != nil {
		t.Fatal(err)
	}

	if reminder.Title != "Reminder: Demo Day" {
		t.Errorf("unexpected title %q", reminder.Title)
	}

	wantStart := start.AddDate(0, 0, -1)
	if !reminder.Start.Equal(wantStart) {
		t.Errorf("reminder should land one day before the event: got %v, want %v", reminder.Start, wantStart)
	}
	if !reminder.End.Equal(wantStart) {
		t.Errorf("all-day reminder end should match its start, got %v", reminder.End)
	}
	if !reminder.AllDay {
		t.Error("reminder should be all-day")
	}

	var meta model.ReminderMetadata
	if err := json.Unmarshal(reminder.Metadata, &meta); err != nil {
		t.Fatalf("metadata should be valid JSON: %v", err)
	}
	if meta.EventID != 42 || meta.EventTitle != "Demo Day" || !meta.EventStart.Equal(start) {
		t.Errorf("unexpected metadata %+v", meta)
	}
}

func TestBuildReminderMonthBoundary(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	event := model.Event{ID: 1, Title: "Workshop", Start: start, End: start}

	reminder, err := BuildReminder(&event)
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC)
	if !reminder.Start.Equal(want) {
		t.Errorf("want %v, got %v", want, reminder.Start)
	}
}
