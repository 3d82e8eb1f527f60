package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/admitdesk/api/model"
	"gorm.io/gorm"
)

// DayFormat is the calendar-day key used throughout the aggregator.
const DayFormat = "2006-01-02"

// MonthFormat keys monthly rollups.
const MonthFormat = "2006-01"

// DaySummary is the present/absent count for one day.
type DaySummary struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// WeekDaySummary is one bucket of the Monday-Sunday weekly chart.
type WeekDaySummary struct {
	Day     string `json:"day"` // Mon, Tue, ...
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// MonthlySummary is a single student's rollup for one month.
type MonthlySummary struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	PresentPct float64 `json:"present_pct"`
	AbsentPct  float64 `json:"absent_pct"`
}

// LeaderboardEntry is one row of the monthly ranking.
type LeaderboardEntry struct {
	StudentID   uint   `json:"student_id"`
	Name        string `json:"name"`
	PresentDays int    `json:"present_days"`
}

// AttendanceService derives authoritative per-day statuses from the
// append-only attendance log and rolls them up for reports.
type AttendanceService struct {
	db *gorm.DB
}

// NewAttendanceService creates the aggregator backed by the record store.
func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// MergeStatuses collapses the raw log into one status per (student, day).
//
// Present dominates: an Absent entry is overwritten by a later (or earlier —
// order does not matter) Present entry, but never the other way around. Pairs
// with no record simply do not appear; missing is not the same as Absent.
func MergeStatuses(records []model.Attendance) map[uint]map[string]model.AttendanceStatus {
	merged := make(map[uint]map[string]model.AttendanceStatus)
	for _, rec := range records {
		day := rec.Date.Format(DayFormat)
		byDay, ok := merged[rec.StudentID]
		if !ok {
			byDay = make(map[string]model.AttendanceStatus)
			merged[rec.StudentID] = byDay
		}
		current, seen := byDay[day]
		if !seen {
			byDay[day] = rec.Status
		} else if current == model.StatusAbsent && rec.Status == model.StatusPresent {
			byDay[day] = model.StatusPresent
		}
	}
	return merged
}

// SummarizeDay counts merged statuses for one day. When students is non-nil
// only those ids are counted (course/batch filtering).
func SummarizeDay(merged map[uint]map[string]model.AttendanceStatus, day string, students map[uint]bool) DaySummary {
	sum := DaySummary{Date: day}
	for id, byDay := range merged {
		if students != nil && !students[id] {
			continue
		}
		switch byDay[day] {
		case model.StatusPresent:
			sum.Present++
		case model.StatusAbsent:
			sum.Absent++
		}
	}
	return sum
}

// SummarizeMonth counts a single student's Present/Absent days in a month
// ("2006-01") and derives percentages, rounded to two decimals. With no
// records both percentages are zero.
func SummarizeMonth(merged map[uint]map[string]model.AttendanceStatus, studentID uint, month string) MonthlySummary {
	var sum MonthlySummary
	for day, status := range merged[studentID] {
		if len(day) < len(month) || day[:len(month)] != month {
			continue
		}
		switch status {
		case model.StatusPresent:
			sum.Present++
		case model.StatusAbsent:
			sum.Absent++
		}
	}
	total := sum.Present + sum.Absent
	if total > 0 {
		sum.PresentPct = round2(float64(sum.Present) / float64(total) * 100)
		sum.AbsentPct = round2(float64(sum.Absent) / float64(total) * 100)
	}
	return sum
}

// RankByPresentDays builds the monthly leaderboard from the raw log.
// Ties keep the order in which students first appear in the log (stable sort).
func RankByPresentDays(records []model.Attendance, month string, names map[uint]string) []LeaderboardEntry {
	merged := MergeStatuses(records)

	// First-seen order makes tie-breaking deterministic.
	var order []uint
	seen := make(map[uint]bool)
	for _, rec := range records {
		if !seen[rec.StudentID] {
			seen[rec.StudentID] = true
			order = append(order, rec.StudentID)
		}
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, id := range order {
		days := 0
		for day, status := range merged[id] {
			if len(day) >= len(month) && day[:len(month)] == month && status == model.StatusPresent {
				days++
			}
		}
		if days == 0 {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			StudentID:   id,
			Name:        names[id],
			PresentDays: days,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PresentDays > entries[j].PresentDays
	})
	return entries
}

// LeaderboardCacheKey is the redis key holding a month's precomputed ranking.
// Shared by the report handler (read), the warmup job (write), and attendance
// marking (invalidation).
func LeaderboardCacheKey(month string) string {
	return "reports:leaderboard:" + month
}

// WeekStart returns the Monday 00:00 of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// DailySummary computes the present/absent count for one day, optionally
// restricted to a course and/or batch.
func (s *AttendanceService) DailySummary(ctx context.Context, date time.Time, course, batch string) (DaySummary, error) {
	day := date.Format(DayFormat)

	students, err := s.studentFilter(ctx, course, batch)
	if err != nil {
		return DaySummary{Date: day}, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	records, err := s.fetchRange(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return DaySummary{Date: day}, err
	}

	return SummarizeDay(MergeStatuses(records), day, students), nil
}

// WeeklySummary computes the 7 daily summaries of the ISO week containing
// anchor, Monday through Sunday.
func (s *AttendanceService) WeeklySummary(ctx context.Context, anchor time.Time, course, batch string) ([]WeekDaySummary, error) {
	monday := WeekStart(anchor)
	week := emptyWeek(monday)

	students, err := s.studentFilter(ctx, course, batch)
	if err != nil {
		return week, err
	}

	records, err := s.fetchRange(ctx, monday, monday.AddDate(0, 0, 7))
	if err != nil {
		return week, err
	}

	merged := MergeStatuses(records)
	for i := range week {
		day := SummarizeDay(merged, week[i].Date, students)
		week[i].Present = day.Present
		week[i].Absent = day.Absent
	}
	return week, nil
}

// MonthlyStudentSummary computes a student's counts and percentages for a
// month given as "2006-01".
func (s *AttendanceService) MonthlyStudentSummary(ctx context.Context, studentID uint, month string) (MonthlySummary, error) {
	start, err := time.Parse(MonthFormat, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	var records []model.Attendance
	err = s.db.WithContext(ctx).
		Where("student_id = ? AND date >= ? AND date < ?", studentID, start, start.AddDate(0, 1, 0)).
		Find(&records).Error
	if err != nil {
		return MonthlySummary{}, err
	}

	return SummarizeMonth(MergeStatuses(records), studentID, month), nil
}

// MonthlyLeaderboard ranks students by derived Present days within a month.
func (s *AttendanceService) MonthlyLeaderboard(ctx context.Context, month string) ([]LeaderboardEntry, error) {
	start, err := time.Parse(MonthFormat, month)
	if err != nil {
		return nil, err
	}

	// Ordered fetch keeps the tie-break (first record wins) reproducible.
	var records []model.Attendance
	err = s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0)).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	var admissions []model.Admission
	if err := s.db.WithContext(ctx).Find(&admissions).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(admissions))
	for _, a := range admissions {
		names[a.ID] = a.Name
	}

	return RankByPresentDays(records, month, names), nil
}

func (s *AttendanceService) fetchRange(ctx context.Context, from, to time.Time) ([]model.Attendance, error) {
	var records []model.Attendance
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Find(&records).Error
	return records, err
}

// studentFilter resolves a course/batch filter to a set of admission ids.
// Returns nil (no filtering) when both filters are empty.
func (s *AttendanceService) studentFilter(ctx context.Context, course, batch string) (map[uint]bool, error) {
	if course == "" && batch == "" {
		return nil, nil
	}

	query := s.db.WithContext(ctx).Model(&model.Admission{})
	if course != "" {
		query = query.Where("course = ?", course)
	}
	if batch != "" {
		query = query.Where("batch = ?", batch)
	}

	var ids []uint
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	filter := make(map[uint]bool, len(ids))
	for _, id := range ids {
		filter[id] = true
	}
	return filter, nil
}

func emptyWeek(monday time.Time) []WeekDaySummary {
	week := make([]WeekDaySummary, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		week[i] = WeekDaySummary{
			Day:  d.Format("Mon"),
			Date: d.Format(DayFormat),
		}
	}
	return week
}
