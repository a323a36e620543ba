package controller

import (
	"errors"
	"strconv"
	"time"

	"labcontrol_backend/internals/configs"
	"labcontrol_backend/internals/features/lab/attendance/dto"
	"labcontrol_backend/internals/features/lab/attendance/service"
	helper "labcontrol_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateAttendance = validator.New()

const topUsersLimit = 5

type AttendanceController struct {
	Service *service.SessionService
	Store   service.SessionStore
	Lab     configs.LabConfig
}

func NewAttendanceController(db *gorm.DB, cfg configs.LabConfig) *AttendanceController {
	store := service.NewGormSessionStore(db)
	return &AttendanceController{
		Service: service.NewSessionService(store),
		Store:   store,
		Lab:     cfg,
	}
}

// =======================
// Check-in / Check-out (kiosk)
// =======================

func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var body dto.CheckInRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Missing required fields.")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Missing required fields.")
	}

	att, err := ctrl.Service.CheckIn(c.UserContext(), body.Email, body.Reason, body.CheckIn)
	switch {
	case err == nil:
		return helper.JsonCreated(c, att)
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonMessage(c, fiber.StatusNotFound, "User not found.")
	case errors.Is(err, service.ErrReasonNotFound):
		return helper.JsonMessage(c, fiber.StatusNotFound, "Reason not found.")
	case errors.Is(err, service.ErrOpenSessionExists):
		return helper.JsonMessage(c, fiber.StatusBadRequest, "User already has an open check-in. Please check out first.")
	default:
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
}

func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var body dto.CheckOutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Missing required fields.")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Missing required fields.")
	}

	err := ctrl.Service.CheckOut(c.UserContext(), body.Email, body.CheckOut)
	switch {
	case err == nil:
		return helper.JsonMessage(c, fiber.StatusOK, "Checked out successfully.")
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonMessage(c, fiber.StatusNotFound, "User not found.")
	case errors.Is(err, service.ErrNoOpenSession):
		return helper.JsonMessage(c, fiber.StatusBadRequest, "No open check-in found for this user.")
	default:
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
}

// =======================
// Session lists (dashboard)
// =======================

func (ctrl *AttendanceController) ListActiveUsers(c *fiber.Ctx) error {
	records, err := ctrl.Service.ListActive(c.UserContext())
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, flattenSessions(records))
}

func (ctrl *AttendanceController) ListInactiveUsers(c *fiber.Ctx) error {
	records, err := ctrl.Service.ListInactive(c.UserContext())
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, flattenSessions(records))
}

func (ctrl *AttendanceController) ListAllUsers(c *fiber.Ctx) error {
	records, err := ctrl.Service.ListAll(c.UserContext())
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, flattenSessions(records))
}

// =======================
// Utilization metrics (dashboard)
// =======================

func (ctrl *AttendanceController) TopUsers(c *fiber.Ctx) error {
	records, err := ctrl.Store.ListSessions(c.UserContext(), service.FilterClosed)
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, service.ComputeTopUsers(records, topUsersLimit))
}

func (ctrl *AttendanceController) LabUtilization(c *fiber.Ctx) error {
	date, err := ctrl.queryDate(c)
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid date. Expected YYYY-MM-DD.")
	}

	records, err := ctrl.loadDay(c, date)
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, service.ComputeDailyUtilization(records, date, ctrl.Lab, time.Now()))
}

func (ctrl *AttendanceController) HourlyUtilization(c *fiber.Ctx) error {
	date, err := ctrl.queryDate(c)
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid date. Expected YYYY-MM-DD.")
	}

	records, err := ctrl.loadDay(c, date)
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, service.ComputeHourlyUtilization(records, date, ctrl.Lab, time.Now()))
}

func (ctrl *AttendanceController) MonthlyUtilization(c *fiber.Ctx) error {
	now := time.Now().In(ctrl.Lab.Location)

	month := int(now.Month())
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid month. Expected 1-12.")
		}
		month = parsed
	}
	year := now.Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2000 {
			return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid year.")
		}
		year = parsed
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, ctrl.Lab.Location)
	to := from.AddDate(0, 1, 0)
	records, err := ctrl.Store.ListBetween(c.UserContext(), from, to)
	if err != nil {
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, service.ComputeMonthlyUtilization(records, time.Month(month), year, ctrl.Lab, time.Now()))
}

// =======================
// helpers
// =======================

func (ctrl *AttendanceController) queryDate(c *fiber.Ctx) (time.Time, error) {
	if v := c.Query("date"); v != "" {
		return time.ParseInLocation("2006-01-02", v, ctrl.Lab.Location)
	}
	now := time.Now().In(ctrl.Lab.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ctrl.Lab.Location), nil
}

// loadDay fetches every session checked in on the calendar date,
// including activity outside the operating window (the aggregator clamps).
func (ctrl *AttendanceController) loadDay(c *fiber.Ctx, date time.Time) ([]service.SessionRecord, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, ctrl.Lab.Location)
	return ctrl.Store.ListBetween(c.UserContext(), from, from.AddDate(0, 0, 1))
}

func flattenSessions(records []service.SessionRecord) []dto.FlatSession {
	flat := make([]dto.FlatSession, 0, len(records))
	for _, r := range records {
		flat = append(flat, dto.FlatSession{
			ID:       r.ID.String(),
			UserID:   r.UserID.String(),
			ReasonID: r.ReasonID.String(),
			CheckIn:  r.CheckIn,
			CheckOut: r.CheckOut,
			Email:    r.Email,
			Name:     r.Name,
			LastName: r.LastName,
			Rut:      r.Rut,
			Reason:   r.Reason,
		})
	}
	return flat
}
