package router

import (
	"log"
	"os"
	"time"

	"github.com/admitdesk/api/database"
	"github.com/admitdesk/api/handlers"
	admission_handlers "github.com/admitdesk/api/handlers/admission"
	attendance_handlers "github.com/admitdesk/api/handlers/attendance"
	auth_handlers "github.com/admitdesk/api/handlers/auth"
	event_handlers "github.com/admitdesk/api/handlers/event"
	festival_handlers "github.com/admitdesk/api/handlers/festival"
	report_handlers "github.com/admitdesk/api/handlers/report"
	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/auth"
	"github.com/admitdesk/api/utils/cache"
	"github.com/admitdesk/api/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, redisCache *cache.RedisCache) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "admitdesk-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        1 * time.Hour,      // Access token expires in 1 hour
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Brute force protection needs Redis; without it logins are unthrottled
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	} else {
		log.Printf("Warning: Redis unavailable. Brute force protection will be disabled.")
	}

	// Initialize auth middleware with DB for blacklist checking
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	admissionHandler := admission_handlers.NewAdmissionHandler(db)
	attendanceHandler := attendance_handlers.NewAttendanceHandler(db, redisCache)

	eventService := services.NewEventService(db)
	eventHandler := event_handlers.NewEventHandler(db, eventService)

	attendanceService := services.NewAttendanceService(db)
	reportHandler := report_handlers.NewReportHandler(attendanceService, redisCache)

	holidayCountry := os.Getenv("HOLIDAY_COUNTRY")
	if holidayCountry == "" {
		holidayCountry = "IN"
	}
	festivalService := services.NewFestivalService(redisCache, holidayCountry)
	festivalHandler := festival_handlers.NewFestivalHandler(festivalService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected auth routes
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Profile route (protected)
	api.Get("/profile", authMiddleware.Required(), authHandler.GetProfile)

	// Admission routes (protected)
	admissions := api.Group("/admissions", authMiddleware.Required())
	admissions.Get("/", admissionHandler.ListAdmissions)
	admissions.Post("/", admissionHandler.CreateAdmission)
	admissions.Post("/check", admissionHandler.CheckDuplicate)
	admissions.Get("/grouped", admissionHandler.GroupedByCourse)
	admissions.Put("/:id", admissionHandler.UpdateAdmission)
	admissions.Delete("/:id", admissionHandler.DeleteAdmission)

	// Attendance routes (protected)
	attendance := api.Group("/attendance", authMiddleware.Required())
	attendance.Get("/", attendanceHandler.ListAttendance)
	attendance.Post("/", attendanceHandler.MarkAttendance)

	// Report routes (protected)
	reports := api.Group("/reports", authMiddleware.Required())
	reports.Get("/daily", reportHandler.DailyReport)
	reports.Get("/weekly", reportHandler.WeeklyReport)
	reports.Get("/leaderboard", reportHandler.Leaderboard)
	reports.Get("/monthly/:studentId", reportHandler.MonthlyStudentReport)

	// Event + reminder routes (protected)
	events := api.Group("/events", authMiddleware.Required())
	events.Get("/", eventHandler.ListEvents)
	events.Get("/upcoming", eventHandler.UpcomingEvents)
	events.Post("/", eventHandler.CreateEvent)
	events.Put("/:id", eventHandler.UpdateEvent)
	events.Delete("/:id", eventHandler.DeleteEvent)

	api.Get("/reminders", authMiddleware.Required(), eventHandler.ListReminders)

	// Festival calendar proxy (protected)
	api.Get("/festivals", authMiddleware.Required(), festivalHandler.ListFestivals)
}
