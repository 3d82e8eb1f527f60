package report

import (
	"log"
	"time"

	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/cache"
	"github.com/admitdesk/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler exposes the attendance rollups the dashboards render.
//
// Fetch failures degrade to an empty summary instead of failing the page:
// the charts draw zeroes and the error is only logged. That mirrors how the
// dashboard always rendered, with or without data.
type ReportHandler struct {
	service *services.AttendanceService
	cache   *cache.RedisCache
}

// NewReportHandler creates a new report handler. cache may be nil.
func NewReportHandler(service *services.AttendanceService, redisCache *cache.RedisCache) *ReportHandler {
	return &ReportHandler{
		service: service,
		cache:   redisCache,
	}
}

// DailyReport handles GET /api/v1/reports/daily?date=&course=&batch=
func (h *ReportHandler) DailyReport(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(services.DayFormat, raw)
		if err != nil {
			return response.BadRequest(c, "date must be formatted YYYY-MM-DD")
		}
		date = parsed
	}

	summary, err := h.service.DailySummary(c.Context(), date, c.Query("course"), c.Query("batch"))
	if err != nil {
		log.Printf("daily summary failed: %v", err)
	}

	return response.Success(c, summary)
}

// WeeklyReport handles GET /api/v1/reports/weekly?date=&course=&batch=
// and returns the seven Monday-Sunday buckets of the week containing date.
func (h *ReportHandler) WeeklyReport(c *fiber.Ctx) error {
	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(services.DayFormat, raw)
		if err != nil {
			return response.BadRequest(c, "date must be formatted YYYY-MM-DD")
		}
		anchor = parsed
	}

	week, err := h.service.WeeklySummary(c.Context(), anchor, c.Query("course"), c.Query("batch"))
	if err != nil {
		log.Printf("weekly summary failed: %v", err)
	}

	return response.Success(c, week)
}

// MonthlyStudentReport handles GET /api/v1/reports/monthly/:studentId?month=YYYY-MM
func (h *ReportHandler) MonthlyStudentReport(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	month := c.Query("month", time.Now().Format(services.MonthFormat))
	if _, err := time.Parse(services.MonthFormat, month); err != nil {
		return response.BadRequest(c, "month must be formatted YYYY-MM")
	}

	summary, err := h.service.MonthlyStudentSummary(c.Context(), uint(studentID), month)
	if err != nil {
		log.Printf("monthly summary failed for student %d: %v", studentID, err)
	}

	return response.Success(c, summary)
}

// Leaderboard handles GET /api/v1/reports/leaderboard?month=YYYY-MM.
// The current month is served from the cron-warmed cache when available.
func (h *ReportHandler) Leaderboard(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format(services.MonthFormat))
	if _, err := time.Parse(services.MonthFormat, month); err != nil {
		return response.BadRequest(c, "month must be formatted YYYY-MM")
	}

	if h.cache != nil {
		var cached []services.LeaderboardEntry
		if err := h.cache.GetJSON(c.Context(), services.LeaderboardCacheKey(month), &cached); err == nil {
			return response.Success(c, cached)
		}
	}

	entries, err := h.service.MonthlyLeaderboard(c.Context(), month)
	if err != nil {
		log.Printf("leaderboard failed for %s: %v", month, err)
		entries = []services.LeaderboardEntry{}
	}

	return response.Success(c, entries)
}
