package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/admitdesk/api/model"
)

func mkRecord(student uint, day string, status model.AttendanceStatus) model.Attendance {
	date, err := time.Parse(DayFormat, day)
	if err != nil {
		panic(err)
	}
	return model.Attendance{StudentID: student, Date: date, Status: status}
}

func TestMergeStatusesPresentDominates(t *testing.T) {
	records := []model.Attendance{
		mkRecord(1, "2025-03-10", model.StatusAbsent),
		mkRecord(1, "2025-03-10", model.StatusPresent),
		mkRecord(1, "2025-03-10", model.StatusAbsent),
	}

	merged := MergeStatuses(records)
	if got := merged[1]["2025-03-10"]; got != model.StatusPresent {
		t.Errorf("expected Present to dominate, got %q", got)
	}
}

func TestMergeStatusesOrderIndependent(t *testing.T) {
	forward := []model.Attendance{
		mkRecord(1, "2025-03-10", model.StatusAbsent),
		mkRecord(1, "2025-03-10", model.StatusPresent),
	}
	backward := []model.Attendance{
		mkRecord(1, "2025-03-10", model.StatusPresent),
		mkRecord(1, "2025-03-10", model.StatusAbsent),
	}

	a := MergeStatuses(forward)[1]["2025-03-10"]
	b := MergeStatuses(backward)[1]["2025-03-10"]
	if a != b {
		t.Errorf("merge should not depend on record order: %q vs %q", a, b)
	}
	if a != model.StatusPresent {
		t.Errorf("expected Present, got %q", a)
	}
}

func TestMergeStatusesMissingIsNotAbsent(t *testing.T) {
	records := []model.Attendance{
		mkRecord(1, "2025-03-10", model.StatusPresent),
	}

	merged := MergeStatuses(records)
	if _, ok := merged[1]["2025-03-11"]; ok {
		t.Error("day without records should not appear in the merge")
	}

	sum := SummarizeDay(merged, "2025-03-11", nil)
	if sum.Present != 0 || sum.Absent != 0 {
		t.Errorf("day without records should count nothing, got %+v", sum)
	}
}

func TestSummarizeDayWithFilter(t *testing.T) {
	records := []model.Attendance{
		mkRecord(1, "2025-03-10", model.StatusPresent),
		mkRecord(2, "2025-03-10", model.StatusPresent),
		mkRecord(3, "2025-03-10", model.StatusAbsent),
	}
	merged := MergeStatuses(records)

	all := SummarizeDay(merged, "2025-03-10", nil)
	if all.Present != 2 || all.Absent != 1 {
		t.Errorf("unfiltered: want 2 present / 1 absent, got %+v", all)
	}

	filtered := SummarizeDay(merged, "2025-03-10", map[uint]bool{1: true, 3: true})
	if filtered.Present != 1 || filtered.Absent != 1 {
		t.Errorf("filtered: want 1 present / 1 absent, got %+v", filtered)
	}
}

func TestSummarizeMonthPercentages(t *testing.T) {
	records := []model.Attendance{
		mkRecord(7, "2025-03-03", model.StatusPresent),
		mkRecord(7, "2025-03-04", model.StatusPresent),
		mkRecord(7, "2025-03-05", model.StatusPresent),
		mkRecord(7, "2025-03-06", model.StatusAbsent),
		mkRecord(7, "2025-03-07", model.StatusAbsent),
		// Different month, must be ignored
		mkRecord(7, "2025-04-01", model.StatusPresent),
	}

	sum := SummarizeMonth(MergeStatuses(records), 7, "2025-03")
	if sum.Present != 3 || sum.Absent != 2 {
		t.Fatalf("want 3 present / 2 absent, got %+v", sum)
	}
	if sum.PresentPct != 60.00 {
		t.Errorf("want present pct 60.00, got %v", sum.PresentPct)
	}
	if sum.AbsentPct != 40.00 {
		t.Errorf("want absent pct 40.00, got %v", sum.AbsentPct)
	}
}

func TestSummarizeMonthRounding(t *testing.T) {
	records := []model.Attendance{
		mkRecord(7, "2025-03-03", model.StatusPresent),
		mkRecord(7, "2025-03-04", model.StatusPresent),
		mkRecord(7, "2025-03-05", model.StatusAbsent),
	}

	sum := SummarizeMonth(MergeStatuses(records), 7, "2025-03")
	if sum.PresentPct != 66.67 {
		t.Errorf("want present pct 66.67, got %v", sum.PresentPct)
	}
	if sum.AbsentPct != 33.33 {
		t.Errorf("want absent pct 33.33, got %v", sum.AbsentPct)
	}
}

func TestSummarizeMonthNoRecords(t *testing.T) {
	sum := SummarizeMonth(MergeStatuses(nil), 7, "2025-03")
	if sum.Present != 0 || sum.Absent != 0 || sum.PresentPct != 0 || sum.AbsentPct != 0 {
		t.Errorf("empty month should be all zeroes, got %+v", sum)
	}
}

func TestRankByPresentDays(t *testing.T) {
	var records []model.Attendance
	addDays := func(student uint, days ...string) {
		for _, d := range days {
			records = append(records, mkRecord(student, d, model.StatusPresent))
		}
	}
	addDays(1, "2025-03-03", "2025-03-04", "2025-03-05")
	addDays(2, "2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07")
	addDays(3, "2025-03-03")
	// Absent days never count toward the ranking
	records = append(records, mkRecord(3, "2025-03-04", model.StatusAbsent))

	names := map[uint]string{1: "Aarav", 2: "Priya", 3: "Kabir"}
	entries := RankByPresentDays(records, "2025-03", names)

	wantIDs := []uint{2, 1, 3}
	wantDays := []int{5, 3, 1}
	if len(entries) != len(wantIDs) {
		t.Fatalf("want %d entries, got %d", len(wantIDs), len(entries))
	}
	for i := range wantIDs {
		if entries[i].StudentID != wantIDs[i] || entries[i].PresentDays != wantDays[i] {
			t.Errorf("entry %d: want student %d with %d days, got %+v", i, wantIDs[i], wantDays[i], entries[i])
		}
	}
	if entries[0].Name != "Priya" {
		t.Errorf("want leader name Priya, got %q", entries[0].Name)
	}
}

func TestRankByPresentDaysStableTies(t *testing.T) {
	records := []model.Attendance{
		mkRecord(10, "2025-03-03", model.StatusPresent),
		mkRecord(20, "2025-03-03", model.StatusPresent),
		mkRecord(30, "2025-03-03", model.StatusPresent),
	}

	entries := RankByPresentDays(records, "2025-03", nil)
	if len(entries) != 3 {
		t.Fatalf("want 3 entries, got %d", len(entries))
	}
	for i, want := range []uint{10, 20, 30} {
		if entries[i].StudentID != want {
			t.Errorf("tie order should follow first appearance: pos %d want %d, got %d", i, want, entries[i].StudentID)
		}
	}
}

func TestRankByPresentDaysSkipsZero(t *testing.T) {
	records := []model.Attendance{
		mkRecord(1, "2025-03-03", model.StatusAbsent),
		mkRecord(2, "2025-03-03", model.StatusPresent),
	}

	entries := RankByPresentDays(records, "2025-03", nil)
	if len(entries) != 1 || entries[0].StudentID != 2 {
		t.Errorf("students with no Present days should be dropped, got %+v", entries)
	}
}

func TestRankByPresentDaysEmptyMonthMarshalsToArray(t *testing.T) {
	entries := RankByPresentDays(nil, "2025-03", nil)
	if entries == nil {
		t.Fatal("empty ranking should be an empty slice, not nil")
	}
	if len(entries) != 0 {
		t.Fatalf("want no entries, got %d", len(entries))
	}

	// The cached copy must decode as [] for clients, never null.
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("want JSON [], got %s", data)
	}
}

func TestLeaderboardCacheKey(t *testing.T) {
	date, _ := time.Parse(DayFormat, "2025-03-12")
	key := LeaderboardCacheKey(date.Format(MonthFormat))
	if key != "reports:leaderboard:2025-03" {
		t.Errorf("unexpected key %q", key)
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-03-10", "2025-03-10"}, // Monday
		{"2025-03-12", "2025-03-10"}, // Wednesday
		{"2025-03-16", "2025-03-10"}, // Sunday
		{"2025-03-17", "2025-03-17"}, // next Monday
	}

	for _, tc := range cases {
		in, err := time.Parse(DayFormat, tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := WeekStart(in).Format(DayFormat); got != tc.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestEmptyWeekBuckets(t *testing.T) {
	monday, _ := time.Parse(DayFormat, "2025-03-10")
	week := emptyWeek(monday)

	if len(week) != 7 {
		t.Fatalf("want 7 buckets, got %d", len(week))
	}
	if week[0].Day != "Mon" || week[0].Date != "2025-03-10" {
		t.Errorf("unexpected first bucket: %+v", week[0])
	}
	if week[6].Day != "Sun" || week[6].Date != "2025-03-16" {
		t.Errorf("unexpected last bucket: %+v", week[6])
	}
}
