package service

import (
	"context"
	"time"

	attendanceModel "labcontrol_backend/internals/features/lab/attendance/model"
)

// SessionService enforces the attendance session lifecycle: one open
// session per user, check-in before check-out, append-only history.
type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

// CheckIn opens a new session for the user identified by email, visiting
// for the named reason. Fails with ErrUserNotFound, ErrReasonNotFound or
// ErrOpenSessionExists.
func (s *SessionService) CheckIn(ctx context.Context, email, reasonName string, at time.Time) (*attendanceModel.AttendanceModel, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Pre-check for a friendly rejection; the partial unique index behind
	// Insert still catches concurrent check-ins that slip past this read.
	if _, err := s.store.FindOpenByUser(ctx, user.UserID); err == nil {
		return nil, ErrOpenSessionExists
	} else if err != ErrNoOpenSession {
		return nil, err
	}

	reason, err := s.store.FindReasonByName(ctx, reasonName)
	if err != nil {
		return nil, err
	}

	att := &attendanceModel.AttendanceModel{
		AttendanceUserID:   user.UserID,
		AttendanceReasonID: reason.ReasonID,
		AttendanceCheckIn:  at,
		AttendanceCheckOut: nil,
	}
	if err := s.store.Insert(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// CheckOut closes the user's single open session. Not idempotent: a
// second call returns ErrNoOpenSession because there is nothing to close.
func (s *SessionService) CheckOut(ctx context.Context, email string, at time.Time) error {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	open, err := s.store.FindOpenByUser(ctx, user.UserID)
	if err != nil {
		return err
	}
	return s.store.SetCheckOut(ctx, open.AttendanceID, at)
}

// ListActive returns open sessions joined with display data. The open-
// session invariant guarantees at most one row per user here.
func (s *SessionService) ListActive(ctx context.Context) ([]SessionRecord, error) {
	return s.store.ListSessions(ctx, FilterOpen)
}

// ListInactive returns completed sessions.
func (s *SessionService) ListInactive(ctx context.Context) ([]SessionRecord, error) {
	return s.store.ListSessions(ctx, FilterClosed)
}

// ListAll returns the full session history.
func (s *SessionService) ListAll(ctx context.Context) ([]SessionRecord, error) {
	return s.store.ListSessions(ctx, FilterAll)
}
