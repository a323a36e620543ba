package dto

import "time"

// ============================
// Request DTOs (kiosk wire format)
// ============================

type CheckInRequest struct {
	Email   string    `json:"email" validate:"required,email"`
	CheckIn time.Time `json:"checkIn" validate:"required"`
	Reason  string    `json:"Reason" validate:"required"`
}

type CheckOutRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	CheckOut time.Time `json:"checkOut" validate:"required"`
}

// ============================
// Flattened session (dashboard tables)
// ============================

type FlatSession struct {
	ID       string     `json:"Id"`
	UserID   string     `json:"UserId"`
	ReasonID string     `json:"ReasonId"`
	CheckIn  time.Time  `json:"CheckIn"`
	CheckOut *time.Time `json:"CheckOut"`
	Email    string     `json:"Email"`
	Name     string     `json:"Name"`
	LastName string     `json:"LastName"`
	Rut      string     `json:"Rut"`
	Reason   string     `json:"Reason"`
}

// ============================
// Aggregated metrics (dashboard charts)
// ============================

type TopUser struct {
	UserID              string  `json:"userId"`
	Email               string  `json:"email"`
	Name                string  `json:"name"`
	LastName            string  `json:"lastName"`
	TotalTime           int64   `json:"totalTime"` // seconds
	SessionCount        int     `json:"sessionCount"`
	TotalTimeHours      float64 `json:"totalTimeHours"`
	AverageSessionHours float64 `json:"averageSessionHours"`
}

type LabUtilization struct {
	UtilizationPercentage       float64 `json:"utilizationPercentage"`
	TotalUtilizedMinutes        int     `json:"totalUtilizedMinutes"`
	UtilizationHours            int     `json:"utilizationHours"`
	UtilizationMinutesRemainder int     `json:"utilizationMinutesRemainder"`
	MaxPossibleMinutes          int     `json:"maxPossibleMinutes"`
	CurrentOccupancy            int     `json:"currentOccupancy"`
	MaxCapacity                 int     `json:"maxCapacity"`
	Date                        string  `json:"date"`
}

type HourlyUtilization struct {
	Hour         string  `json:"hour"` // "09:00"
	Utilization  float64 `json:"utilization"`
	ActiveUsers  int     `json:"activeUsers"`
	TotalMinutes int     `json:"totalMinutes"`
}

type DailyBreakdown struct {
	Date                  string  `json:"date"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	UtilizedMinutes       int     `json:"utilizedMinutes"`
	ActiveUsers           int     `json:"activeUsers"`
}

type MonthlyUtilization struct {
	Month                             int              `json:"month"`
	Year                              int              `json:"year"`
	MonthlyUtilizationPercentage      float64          `json:"monthlyUtilizationPercentage"`
	AverageDailyUtilizationPercentage float64          `json:"averageDailyUtilizationPercentage"`
	TotalUtilizedMinutes              int              `json:"totalUtilizedMinutes"`
	TotalUtilizedHours                int              `json:"totalUtilizedHours"`
	TotalUtilizedMinutesRemainder     int              `json:"totalUtilizedMinutesRemainder"`
	BusinessDaysCount                 int              `json:"businessDaysCount"`
	TotalPossibleMinutes              int              `json:"totalPossibleMinutes"`
	DailyBreakdown                    []DailyBreakdown `json:"dailyBreakdown"`
	PeakDay                           *DailyBreakdown  `json:"peakDay"`
	LowDay                            *DailyBreakdown  `json:"lowDay"`
}
