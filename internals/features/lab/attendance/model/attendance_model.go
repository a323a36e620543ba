package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel is one check-in/check-out pair for a user. A null
// check-out means the session is still open. Rows are append-only
// history; the only mutation ever applied is setting the check-out.
//
// At most one open row may exist per user at any time. The guard in the
// session service is backed by a partial unique index on
// (attendance_user_id) WHERE attendance_check_out IS NULL, created in
// database.Migrate, so concurrent check-ins cannot race past it.
type AttendanceModel struct {
	AttendanceID       uuid.UUID  `gorm:"column:attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceUserID   uuid.UUID  `gorm:"column:attendance_user_id;type:uuid;not null;index" json:"attendance_user_id"`
	AttendanceReasonID uuid.UUID  `gorm:"column:attendance_reason_id;type:uuid;not null" json:"attendance_reason_id"`
	AttendanceCheckIn  time.Time  `gorm:"column:attendance_check_in;not null;index" json:"attendance_check_in"`
	AttendanceCheckOut *time.Time `gorm:"column:attendance_check_out" json:"attendance_check_out"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

// IsOpen reports whether the session has no check-out yet.
func (a AttendanceModel) IsOpen() bool {
	return a.AttendanceCheckOut == nil
}

// Duration returns the elapsed time of a completed session, or zero for
// an open one.
func (a AttendanceModel) Duration() time.Duration {
	if a.AttendanceCheckOut == nil {
		return 0
	}
	return a.AttendanceCheckOut.Sub(a.AttendanceCheckIn)
}
