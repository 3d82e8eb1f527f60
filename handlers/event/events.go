package event

import (
	"errors"
	"time"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/response"
	"github.com/admitdesk/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventHandler handles calendar events and their reminders
type EventHandler struct {
	db        *gorm.DB
	service   *services.EventService
	validator *validation.Validator
}

// NewEventHandler creates a new event handler
func NewEventHandler(db *gorm.DB, service *services.EventService) *EventHandler {
	return &EventHandler{
		db:        db,
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateEventRequest represents a new calendar event
type CreateEventRequest struct {
	Title  string    `json:"title" validate:"required,min=2"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
	Slot   string    `json:"slot"`
	Batch  string    `json:"batch" validate:"omitempty,batch"`
	Course string    `json:"course" validate:"omitempty,course"`
}

// UpdateEventRequest carries the event fields to replace
type UpdateEventRequest struct {
	Title  string     `json:"title"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
	Slot   string     `json:"slot"`
	Batch  string     `json:"batch" validate:"omitempty,batch"`
	Course string     `json:"course" validate:"omitempty,course"`
}

// CreateEvent handles POST /api/v1/events. A reminder dated one day before
// the start is created alongside; if that insert fails the event stays.
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	event := model.Event{
		Title:  validation.SanitizeString(req.Title),
		Start:  req.Start,
		End:    req.End,
		Slot:   req.Slot,
		Batch:  req.Batch,
		Course: req.Course,
	}

	if err := h.service.CreateEvent(c.Context(), &event); err != nil {
		return response.InternalServerError(c, "Error adding event")
	}

	return response.Created(c, "Event added successfully!", event)
}

// ListEvents handles GET /api/v1/events
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.service.ListEvents(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching events")
	}

	return response.Success(c, events)
}

// UpcomingEvents handles GET /api/v1/events/upcoming
func (h *EventHandler) UpcomingEvents(c *fiber.Ctx) error {
	events, err := h.service.UpcomingEvents(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Error fetching upcoming events")
	}

	return response.Success(c, events)
}

// UpdateEvent handles PUT /api/v1/events/:id. Only the event changes; the
// reminder created with it is left as is.
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid event id")
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	patch := map[string]interface{}{}
	if req.Title != "" {
		patch["title"] = validation.SanitizeString(req.Title)
	}
	if req.Start != nil {
		patch["start"] = *req.Start
	}
	if req.End != nil {
		patch["end"] = *req.End
	}
	if req.Slot != "" {
		patch["slot"] = req.Slot
	}
	if req.Batch != "" {
		patch["batch"] = req.Batch
	}
	if req.Course != "" {
		patch["course"] = req.Course
	}

	event, err := h.service.UpdateEvent(c.Context(), uint(id), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Error updating event")
	}

	return response.Success(c, event)
}

// DeleteEvent handles DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid event id")
	}

	if err := h.service.DeleteEvent(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Error deleting event")
	}

	return response.SuccessWithMessage(c, "Event deleted successfully!", nil)
}

// ListReminders handles GET /api/v1/reminders
func (h *EventHandler) ListReminders(c *fiber.Ctx) error {
	reminders, err := h.service.ListReminders(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching reminders")
	}

	return response.Success(c, reminders)
}
