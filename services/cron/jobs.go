package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/auth"
)

// CleanupExpiredTokens removes blacklist entries whose tokens have expired
// anyway. Runs hourly.
func (m *CronManager) CleanupExpiredTokens() {
	started := time.Now()
	jobName := "cleanup_expired_tokens"

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := auth.NewBlacklistService(m.db).CleanupExpiredTokens(ctx)
	if err != nil {
		m.logJobError(jobName, started, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("removed %d expired blacklist entries", removed), started)
}

// ReminderDigest logs the reminders due within the next 24 hours. Runs daily.
func (m *CronManager) ReminderDigest() {
	started := time.Now()
	jobName := "reminder_digest"

	now := time.Now()
	var reminders []model.Reminder
	err := m.db.
		Where("start >= ? AND start < ?", now, now.Add(24*time.Hour)).
		Order("start ASC").
		Find(&reminders).Error
	if err != nil {
		m.logJobError(jobName, started, err)
		return
	}

	for _, r := range reminders {
		log.Printf("[CRON] upcoming reminder: %q at %s", r.Title, r.Start.Format(time.RFC3339))
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d reminders due in next 24h", len(reminders)), started)
}

// WarmLeaderboardCache precomputes the current month's leaderboard so the
// report endpoint can answer from redis. Skipped when redis is unavailable.
func (m *CronManager) WarmLeaderboardCache() {
	started := time.Now()
	jobName := "leaderboard_warmup"

	if m.cache == nil {
		m.logJobComplete(jobName, "cache unavailable, skipped", started)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	month := time.Now().Format(services.MonthFormat)
	entries, err := services.NewAttendanceService(m.db).MonthlyLeaderboard(ctx, month)
	if err != nil {
		m.logJobError(jobName, started, err)
		return
	}

	key := services.LeaderboardCacheKey(month)
	if err := m.cache.SetJSON(ctx, key, entries, time.Hour); err != nil {
		m.logJobError(jobName, started, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("cached %d leaderboard entries for %s", len(entries), month), started)
}
