package service

import (
	"testing"
	"time"

	"labcontrol_backend/internals/configs"

	"github.com/google/uuid"
)

func testLab(capacity int) configs.LabConfig {
	return configs.LabConfig{
		OpenHour:       8,
		CloseHour:      18,
		MaxCapacity:    capacity,
		DeadlineHour:   17,
		DeadlineMinute: 30,
		Location:       time.UTC,
	}
}

func closedSession(userID uuid.UUID, in, out time.Time) SessionRecord {
	return SessionRecord{ID: uuid.New(), UserID: userID, CheckIn: in, CheckOut: &out}
}

func openSession(userID uuid.UUID, in time.Time) SessionRecord {
	return SessionRecord{ID: uuid.New(), UserID: userID, CheckIn: in}
}

func TestDailyUtilizationCountsClosedSessions(t *testing.T) {
	cfg := testLab(10) // 6000 possible person-minutes per day
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	u := uuid.New()

	sessions := []SessionRecord{
		closedSession(u,
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)),
	}

	got := ComputeDailyUtilization(sessions, day, cfg, now)
	if got.TotalUtilizedMinutes != 120 {
		t.Fatalf("utilized = %d, want 120", got.TotalUtilizedMinutes)
	}
	if got.UtilizationPercentage != 2.0 {
		t.Fatalf("pct = %v, want 2.0", got.UtilizationPercentage)
	}
	if got.UtilizationHours != 2 || got.UtilizationMinutesRemainder != 0 {
		t.Fatalf("hours/rem = %d/%d, want 2/0", got.UtilizationHours, got.UtilizationMinutesRemainder)
	}
	if got.MaxPossibleMinutes != 6000 {
		t.Fatalf("possible = %d, want 6000", got.MaxPossibleMinutes)
	}
	if got.Date != "2026-03-02" {
		t.Fatalf("date = %q", got.Date)
	}
}

func TestDailyUtilizationClampsToOperatingWindow(t *testing.T) {
	cfg := testLab(10)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, 1)
	u := uuid.New()

	// 07:00-09:00: only the hour past opening counts.
	early := closedSession(u,
		time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	// 17:30-19:00: only the half hour before closing counts.
	late := closedSession(uuid.New(),
		time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC))

	got := ComputeDailyUtilization([]SessionRecord{early, late}, day, cfg, now)
	if got.TotalUtilizedMinutes != 90 {
		t.Fatalf("utilized = %d, want 90", got.TotalUtilizedMinutes)
	}
}

func TestDailyUtilizationOpenSessions(t *testing.T) {
	cfg := testLab(10)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	u := uuid.New()
	open := openSession(u, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	// Same day: the open session accrues up to now.
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	got := ComputeDailyUtilization([]SessionRecord{open}, day, cfg, now)
	if got.TotalUtilizedMinutes != 90 {
		t.Fatalf("today utilized = %d, want 90", got.TotalUtilizedMinutes)
	}
	if got.CurrentOccupancy != 1 {
		t.Fatalf("occupancy = %d, want 1", got.CurrentOccupancy)
	}

	// Past day: an open session left behind counts to the window end.
	later := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	got = ComputeDailyUtilization([]SessionRecord{open}, day, cfg, later)
	if got.TotalUtilizedMinutes != 540 { // 09:00-18:00
		t.Fatalf("past-day utilized = %d, want 540", got.TotalUtilizedMinutes)
	}
}

func TestDailyUtilizationIsAdditiveAndUncapped(t *testing.T) {
	cfg := testLab(1) // 600 possible minutes
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, 1)

	full := func() SessionRecord {
		return closedSession(uuid.New(),
			time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	}

	got := ComputeDailyUtilization([]SessionRecord{full(), full()}, day, cfg, now)
	if got.UtilizationPercentage != 200.0 {
		t.Fatalf("pct = %v, want 200.0 (never capped)", got.UtilizationPercentage)
	}
}

func TestHourlyUtilizationBuckets(t *testing.T) {
	cfg := testLab(10)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, 1)
	u := uuid.New()

	sessions := []SessionRecord{
		closedSession(u,
			time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)),
	}

	got := ComputeHourlyUtilization(sessions, day, cfg, now)
	if len(got) != 10 {
		t.Fatalf("buckets = %d, want 10", len(got))
	}
	if got[0].Hour != "08:00" || got[9].Hour != "17:00" {
		t.Fatalf("bucket labels = %q..%q", got[0].Hour, got[9].Hour)
	}

	for _, b := range got {
		switch b.Hour {
		case "09:00":
			if b.TotalMinutes != 30 || b.ActiveUsers != 1 {
				t.Fatalf("09:00 = %+v, want 30 min / 1 user", b)
			}
			// 30 of 600 possible person-minutes.
			if b.Utilization != 5.0 {
				t.Fatalf("09:00 pct = %v, want 5.0", b.Utilization)
			}
		case "10:00":
			if b.TotalMinutes != 15 || b.ActiveUsers != 1 {
				t.Fatalf("10:00 = %+v, want 15 min / 1 user", b)
			}
		default:
			if b.TotalMinutes != 0 || b.ActiveUsers != 0 || b.Utilization != 0 {
				t.Fatalf("%s should be an explicit zero bucket, got %+v", b.Hour, b)
			}
		}
	}
}

func TestMonthlyUtilizationBusinessDaysOnly(t *testing.T) {
	cfg := testLab(10)
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	u := uuid.New()

	sessions := []SessionRecord{
		// Monday June 1st, 2 hours.
		closedSession(u,
			time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 1, 11, 0, 0, 0, time.UTC)),
		// Saturday June 6th: must not contribute anywhere.
		closedSession(u,
			time.Date(2026, 6, 6, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 6, 12, 0, 0, 0, time.UTC)),
	}

	got := ComputeMonthlyUtilization(sessions, time.June, 2026, cfg, now)

	// June 2026 starts on a Monday and has 22 business days.
	if got.BusinessDaysCount != 22 {
		t.Fatalf("business days = %d, want 22", got.BusinessDaysCount)
	}
	if len(got.DailyBreakdown) != 22 {
		t.Fatalf("breakdown rows = %d, want 22", len(got.DailyBreakdown))
	}
	for _, d := range got.DailyBreakdown {
		if d.Date == "2026-06-06" || d.Date == "2026-06-07" {
			t.Fatalf("weekend %s leaked into the breakdown", d.Date)
		}
	}

	if got.TotalUtilizedMinutes != 120 {
		t.Fatalf("total utilized = %d, want 120 (weekend excluded)", got.TotalUtilizedMinutes)
	}
	if got.TotalPossibleMinutes != 22*6000 {
		t.Fatalf("total possible = %d, want %d", got.TotalPossibleMinutes, 22*6000)
	}

	// Minute-weighted: 120/132000. Mean of dailies: 2.0/22. Both round to 0.09.
	if got.MonthlyUtilizationPercentage != 0.09 {
		t.Fatalf("monthly pct = %v, want 0.09", got.MonthlyUtilizationPercentage)
	}
	if got.AverageDailyUtilizationPercentage != 0.09 {
		t.Fatalf("avg daily pct = %v, want 0.09", got.AverageDailyUtilizationPercentage)
	}

	if got.PeakDay == nil || got.PeakDay.Date != "2026-06-01" {
		t.Fatalf("peak day = %+v, want 2026-06-01", got.PeakDay)
	}
	// All other days are 0; ties resolve to the earliest date.
	if got.LowDay == nil || got.LowDay.Date != "2026-06-02" {
		t.Fatalf("low day = %+v, want 2026-06-02", got.LowDay)
	}
}

func TestMonthlyUtilizationEmptyMonth(t *testing.T) {
	cfg := testLab(10)
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	got := ComputeMonthlyUtilization(nil, time.June, 2026, cfg, now)
	if got.MonthlyUtilizationPercentage != 0 || got.AverageDailyUtilizationPercentage != 0 {
		t.Fatalf("empty month pct = %v/%v, want 0/0",
			got.MonthlyUtilizationPercentage, got.AverageDailyUtilizationPercentage)
	}
	if got.PeakDay == nil || got.LowDay == nil {
		t.Fatal("peak/low should still point at (zero) days")
	}
}

func TestTopUsersRanking(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	userA, userB := uuid.New(), uuid.New()

	a1 := closedSession(userA, base, base.Add(2*time.Hour))
	a1.Email, a1.Name = "ana@uni.cl", "Ana"
	a2 := closedSession(userA, base.AddDate(0, 0, 1), base.AddDate(0, 0, 1).Add(3*time.Hour))
	a2.Email, a2.Name = "ana@uni.cl", "Ana"
	b1 := closedSession(userB, base.Add(time.Hour), base.Add(4*time.Hour))
	b1.Email, b1.Name = "ben@uni.cl", "Ben"
	// Open sessions never contribute to the ranking.
	stillIn := openSession(userB, base.AddDate(0, 0, 2))

	got := ComputeTopUsers([]SessionRecord{a1, b1, a2, stillIn}, 5)
	if len(got) != 2 {
		t.Fatalf("ranked users = %d, want 2", len(got))
	}

	first, second := got[0], got[1]
	if first.Email != "ana@uni.cl" {
		t.Fatalf("first = %s, want ana@uni.cl", first.Email)
	}
	if first.TotalTime != int64(5*3600) || first.SessionCount != 2 {
		t.Fatalf("ana total/count = %d/%d, want 18000/2", first.TotalTime, first.SessionCount)
	}
	if first.TotalTimeHours != 5.0 || first.AverageSessionHours != 2.5 {
		t.Fatalf("ana hours/avg = %v/%v, want 5.0/2.5", first.TotalTimeHours, first.AverageSessionHours)
	}
	if second.Email != "ben@uni.cl" || second.TotalTime != int64(3*3600) {
		t.Fatalf("second = %s/%d, want ben@uni.cl/10800", second.Email, second.TotalTime)
	}
}

func TestTopUsersTieBreaksOnEarliestCheckIn(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	early, late := uuid.New(), uuid.New()

	s1 := closedSession(late, base.Add(time.Hour), base.Add(3*time.Hour))
	s1.Email = "late@uni.cl"
	s2 := closedSession(early, base, base.Add(2*time.Hour))
	s2.Email = "early@uni.cl"

	got := ComputeTopUsers([]SessionRecord{s1, s2}, 5)
	if len(got) != 2 || got[0].Email != "early@uni.cl" {
		t.Fatalf("tie should rank the earlier first check-in first, got %+v", got)
	}
}

func TestTopUsersLimit(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var sessions []SessionRecord
	for i := 0; i < 8; i++ {
		s := closedSession(uuid.New(), base, base.Add(time.Duration(i+1)*time.Hour))
		sessions = append(sessions, s)
	}
	got := ComputeTopUsers(sessions, 5)
	if len(got) != 5 {
		t.Fatalf("limited ranking = %d, want 5", len(got))
	}
	// Longest totals first.
	if got[0].TotalTimeHours != 8.0 {
		t.Fatalf("top total = %v, want 8.0", got[0].TotalTimeHours)
	}
}
