package attendance

import (
	"time"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/cache"
	"github.com/admitdesk/api/utils/response"
	"github.com/admitdesk/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AttendanceHandler exposes the append-only attendance log
type AttendanceHandler struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	validator *validation.Validator
}

// NewAttendanceHandler creates a new attendance handler. cache may be nil.
func NewAttendanceHandler(db *gorm.DB, redisCache *cache.RedisCache) *AttendanceHandler {
	return &AttendanceHandler{
		db:        db,
		cache:     redisCache,
		validator: validation.NewValidator(),
	}
}

// MarkAttendanceRequest represents one mark-attendance action
type MarkAttendanceRequest struct {
	StudentID uint      `json:"studentId" validate:"required,min=1"`
	Date      time.Time `json:"date" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent"`
}

// MarkAttendance handles POST /api/v1/attendance.
//
// Every call appends a new record — marks are never upserted, so the same
// (student, day) pair can accumulate several rows. The aggregator merges
// them with Present winning.
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	record := model.Attendance{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    model.AttendanceStatus(req.Status),
	}

	if err := h.db.Create(&record).Error; err != nil {
		return response.InternalServerError(c, "Error marking attendance")
	}

	// The mark changes the month's ranking; drop the warmed copy so the
	// leaderboard endpoint recomputes instead of serving a stale cache.
	if h.cache != nil {
		month := record.Date.Format(services.MonthFormat)
		_ = h.cache.Delete(c.Context(), services.LeaderboardCacheKey(month))
	}

	return response.Created(c, "Attendance marked successfully!", record)
}

// ListAttendance handles GET /api/v1/attendance.
//
// Records are returned with the referenced student populated. Rows whose
// admission has since been deleted are still returned, with a nil student —
// the dangling reference is documented behavior.
func (h *AttendanceHandler) ListAttendance(c *fiber.Ctx) error {
	var records []model.Attendance
	if err := h.db.Preload("Student").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Error fetching attendance records")
	}

	return response.Success(c, records)
}
