package cron

import (
	"log"
	"time"

	"github.com/admitdesk/api/utils/cache"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/admitdesk/api/model"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron  *cron.Cron
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewCronManager creates a new cron manager. cache may be nil; cache-backed
// jobs are skipped in that case.
func NewCronManager(db *gorm.DB, redisCache *cache.RedisCache) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:  c,
		db:    db,
		cache: redisCache,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Every hour: remove expired blacklist entries
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("cleanup_expired_tokens")
		m.CleanupExpiredTokens()
	})
	if err != nil {
		return err
	}

	// 2. Daily at 7 AM: log reminders due within the next day
	_, err = m.cron.AddFunc("0 0 7 * * *", func() {
		m.logJobStart("reminder_digest")
		m.ReminderDigest()
	})
	if err != nil {
		return err
	}

	// 3. Every 30 minutes: warm the monthly leaderboard cache
	_, err = m.cron.AddFunc("0 */30 * * * *", func() {
		m.logJobStart("leaderboard_warmup")
		m.WarmLeaderboardCache()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart records the start of a job run.
func (m *CronManager) logJobStart(jobName string) {
	entry := model.CronJobLog{
		JobName:   jobName,
		Status:    "started",
		StartedAt: time.Now(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] failed to log start of %s: %v", jobName, err)
	}
}

// logJobComplete records a successful run.
func (m *CronManager) logJobComplete(jobName, message string, startedAt time.Time) {
	now := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "completed",
		StartedAt:   startedAt,
		CompletedAt: &now,
		Duration:    int(now.Sub(startedAt).Milliseconds()),
		Message:     message,
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] failed to log completion of %s: %v", jobName, err)
	}
}

// logJobError records a failed run.
func (m *CronManager) logJobError(jobName string, startedAt time.Time, jobErr error) {
	now := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "failed",
		StartedAt:   startedAt,
		CompletedAt: &now,
		Duration:    int(now.Sub(startedAt).Milliseconds()),
		ErrorMsg:    jobErr.Error(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] failed to log error of %s: %v", jobName, err)
	}
}
