package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"labcontrol_backend/internals/configs"
	"labcontrol_backend/internals/features/lab/attendance/dto"

	"github.com/google/uuid"
)

// Utilization is additive person-minutes against theoretical capacity:
// two users present for the same hour count twice. The percentage may
// therefore exceed 100 and is reported as-is, never capped.

// ComputeDailyUtilization aggregates all sessions checked in on the given
// date against the operating window. Open sessions count up to now when
// the date is today, otherwise up to the window end.
func ComputeDailyUtilization(sessions []SessionRecord, date time.Time, cfg configs.LabConfig, now time.Time) dto.LabUtilization {
	utilized, _ := dayMinutes(sessions, date, cfg, now)
	possible := cfg.PossibleMinutes()

	occupancy := 0
	for _, s := range sessions {
		if s.IsOpen() && sameDay(s.CheckIn.In(cfg.Location), date, cfg.Location) {
			occupancy++
		}
	}

	return dto.LabUtilization{
		UtilizationPercentage:       percentage(utilized, possible),
		TotalUtilizedMinutes:        utilized,
		UtilizationHours:            utilized / 60,
		UtilizationMinutesRemainder: utilized % 60,
		MaxPossibleMinutes:          possible,
		CurrentOccupancy:            occupancy,
		MaxCapacity:                 cfg.MaxCapacity,
		Date:                        date.In(cfg.Location).Format("2006-01-02"),
	}
}

// ComputeHourlyUtilization partitions the operating window of the given
// date into 1-hour buckets. Buckets without activity report zeros.
func ComputeHourlyUtilization(sessions []SessionRecord, date time.Time, cfg configs.LabConfig, now time.Time) []dto.HourlyUtilization {
	d := date.In(cfg.Location)
	result := make([]dto.HourlyUtilization, 0, cfg.CloseHour-cfg.OpenHour)

	for h := cfg.OpenHour; h < cfg.CloseHour; h++ {
		bucketStart := time.Date(d.Year(), d.Month(), d.Day(), h, 0, 0, 0, cfg.Location)
		bucketEnd := bucketStart.Add(time.Hour)

		var total time.Duration
		users := map[uuid.UUID]struct{}{}
		for _, s := range sessions {
			if !sameDay(s.CheckIn.In(cfg.Location), d, cfg.Location) {
				continue
			}
			end := sessionEnd(s, d, cfg, now)
			overlap := overlapDuration(s.CheckIn, end, bucketStart, bucketEnd)
			if overlap > 0 {
				total += overlap
				users[s.UserID] = struct{}{}
			}
		}

		minutes := int(total.Minutes())
		result = append(result, dto.HourlyUtilization{
			Hour:         fmt.Sprintf("%02d:00", h),
			Utilization:  percentage(minutes, 60*cfg.MaxCapacity),
			ActiveUsers:  len(users),
			TotalMinutes: minutes,
		})
	}
	return result
}

// ComputeMonthlyUtilization aggregates business days (Mon-Fri) of the
// month. Weekend sessions contribute nothing and weekends appear neither
// in the breakdown nor in the possible-minutes denominator. Two distinct
// figures are returned: the minute-weighted monthly percentage and the
// unweighted mean of the per-day percentages.
func ComputeMonthlyUtilization(sessions []SessionRecord, month time.Month, year int, cfg configs.LabConfig, now time.Time) dto.MonthlyUtilization {
	first := time.Date(year, month, 1, 0, 0, 0, 0, cfg.Location)

	var breakdown []dto.DailyBreakdown
	totalUtilized := 0
	sumDailyPct := 0.0

	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		utilized, activeUsers := dayMinutes(sessions, day, cfg, now)
		pct := percentage(utilized, cfg.PossibleMinutes())

		breakdown = append(breakdown, dto.DailyBreakdown{
			Date:                  day.Format("2006-01-02"),
			UtilizationPercentage: pct,
			UtilizedMinutes:       utilized,
			ActiveUsers:           activeUsers,
		})
		totalUtilized += utilized
		sumDailyPct += pct
	}

	businessDays := len(breakdown)
	totalPossible := businessDays * cfg.PossibleMinutes()

	var peak, low *dto.DailyBreakdown
	for i := range breakdown {
		d := &breakdown[i]
		// Strict comparisons keep the earliest date on ties.
		if peak == nil || d.UtilizationPercentage > peak.UtilizationPercentage {
			peak = d
		}
		if low == nil || d.UtilizationPercentage < low.UtilizationPercentage {
			low = d
		}
	}

	avgDaily := 0.0
	if businessDays > 0 {
		avgDaily = round2(sumDailyPct / float64(businessDays))
	}

	return dto.MonthlyUtilization{
		Month:                             int(month),
		Year:                              year,
		MonthlyUtilizationPercentage:      percentage(totalUtilized, totalPossible),
		AverageDailyUtilizationPercentage: avgDaily,
		TotalUtilizedMinutes:              totalUtilized,
		TotalUtilizedHours:                totalUtilized / 60,
		TotalUtilizedMinutesRemainder:     totalUtilized % 60,
		BusinessDaysCount:                 businessDays,
		TotalPossibleMinutes:              totalPossible,
		DailyBreakdown:                    breakdown,
		PeakDay:                           peak,
		LowDay:                            low,
	}
}

// ComputeTopUsers ranks users by total completed-session time. Open
// sessions are excluded. Ties break on earliest first check-in, then on
// user id, so the ordering is fully deterministic.
func ComputeTopUsers(sessions []SessionRecord, n int) []dto.TopUser {
	type acc struct {
		record       SessionRecord
		total        time.Duration
		count        int
		firstCheckIn time.Time
	}

	byUser := map[uuid.UUID]*acc{}
	for _, s := range sessions {
		if s.CheckOut == nil {
			continue
		}
		a, ok := byUser[s.UserID]
		if !ok {
			a = &acc{record: s, firstCheckIn: s.CheckIn}
			byUser[s.UserID] = a
		}
		a.total += s.CheckOut.Sub(s.CheckIn)
		a.count++
		if s.CheckIn.Before(a.firstCheckIn) {
			a.firstCheckIn = s.CheckIn
		}
	}

	ranked := make([]*acc, 0, len(byUser))
	for _, a := range byUser {
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		if !ranked[i].firstCheckIn.Equal(ranked[j].firstCheckIn) {
			return ranked[i].firstCheckIn.Before(ranked[j].firstCheckIn)
		}
		return ranked[i].record.UserID.String() < ranked[j].record.UserID.String()
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]dto.TopUser, 0, len(ranked))
	for _, a := range ranked {
		totalSeconds := int64(a.total.Seconds())
		totalHours := round2(a.total.Hours())
		top = append(top, dto.TopUser{
			UserID:              a.record.UserID.String(),
			Email:               a.record.Email,
			Name:                a.record.Name,
			LastName:            a.record.LastName,
			TotalTime:           totalSeconds,
			SessionCount:        a.count,
			TotalTimeHours:      totalHours,
			AverageSessionHours: round2(a.total.Hours() / float64(a.count)),
		})
	}
	return top
}

// dayMinutes sums, over all sessions checked in on date, the overlap with
// the operating window, and counts the distinct users seen that day.
func dayMinutes(sessions []SessionRecord, date time.Time, cfg configs.LabConfig, now time.Time) (int, int) {
	d := date.In(cfg.Location)
	winStart := time.Date(d.Year(), d.Month(), d.Day(), cfg.OpenHour, 0, 0, 0, cfg.Location)
	winEnd := time.Date(d.Year(), d.Month(), d.Day(), cfg.CloseHour, 0, 0, 0, cfg.Location)

	var total time.Duration
	users := map[uuid.UUID]struct{}{}
	for _, s := range sessions {
		if !sameDay(s.CheckIn.In(cfg.Location), d, cfg.Location) {
			continue
		}
		users[s.UserID] = struct{}{}
		end := sessionEnd(s, d, cfg, now)
		total += overlapDuration(s.CheckIn, end, winStart, winEnd)
	}
	return int(total.Minutes()), len(users)
}

// sessionEnd resolves the effective end of a session for aggregation on
// the given date: the stored check-out, "now" for a still-open session on
// today, or the window close for an open session on a past date (the
// sweep closes those at the deadline in normal operation).
func sessionEnd(s SessionRecord, date time.Time, cfg configs.LabConfig, now time.Time) time.Time {
	if s.CheckOut != nil {
		return *s.CheckOut
	}
	if sameDay(now.In(cfg.Location), date, cfg.Location) {
		return now
	}
	d := date.In(cfg.Location)
	return time.Date(d.Year(), d.Month(), d.Day(), cfg.CloseHour, 0, 0, 0, cfg.Location)
}

func overlapDuration(start, end, winStart, winEnd time.Time) time.Duration {
	if start.Before(winStart) {
		start = winStart
	}
	if end.After(winEnd) {
		end = winEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
