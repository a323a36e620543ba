package service

import (
	"context"
	"time"

	attendanceModel "labcontrol_backend/internals/features/lab/attendance/model"
	reasonModel "labcontrol_backend/internals/features/lab/reasons/model"
	userModel "labcontrol_backend/internals/features/users/users/model"

	"github.com/google/uuid"
)

// SessionFilter selects sessions by lifecycle state.
type SessionFilter int

const (
	FilterAll SessionFilter = iota
	FilterOpen
	FilterClosed
)

// SessionRecord is an attendance row joined with the user and reason
// display columns. The aggregator and the list endpoints both read this
// shape; neither ever writes.
type SessionRecord struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	ReasonID uuid.UUID
	CheckIn  time.Time
	CheckOut *time.Time
	Email    string
	Name     string
	LastName string
	Rut      string
	Reason   string
}

// IsOpen reports whether the record has no check-out yet.
func (r SessionRecord) IsOpen() bool {
	return r.CheckOut == nil
}

// SessionStore is the persistence surface the session manager and the
// auto-checkout sweep run against. The production implementation is
// GormSessionStore; tests use an in-memory fake.
type SessionStore interface {
	FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindReasonByName(ctx context.Context, name string) (*reasonModel.ReasonModel, error)

	// FindOpenByUser returns the user's single open session, or
	// ErrNoOpenSession when there is none.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*attendanceModel.AttendanceModel, error)

	// Insert persists a new open session. A partial-unique-index violation
	// (another open session for the same user) maps to ErrOpenSessionExists.
	Insert(ctx context.Context, att *attendanceModel.AttendanceModel) error

	// SetCheckOut closes the session. ErrNoOpenSession when the row is
	// already closed or missing.
	SetCheckOut(ctx context.Context, attendanceID uuid.UUID, at time.Time) error

	ListSessions(ctx context.Context, filter SessionFilter) ([]SessionRecord, error)

	// ListBetween returns sessions whose check-in falls in [from, to).
	ListBetween(ctx context.Context, from, to time.Time) ([]SessionRecord, error)

	// CloseAllOpenBefore stamps every open session with check-in at or
	// before deadline with that exact deadline; returns rows affected.
	CloseAllOpenBefore(ctx context.Context, deadline time.Time) (int64, error)
}
