package service

import (
	"context"
	"errors"
	"testing"
	"time"

	attendanceModel "labcontrol_backend/internals/features/lab/attendance/model"
	reasonModel "labcontrol_backend/internals/features/lab/reasons/model"
	userModel "labcontrol_backend/internals/features/users/users/model"

	"github.com/google/uuid"
)

// memStore is an in-memory SessionStore mirroring the production
// semantics, including the open-session uniqueness the partial index
// enforces in Postgres.
type memStore struct {
	users    []userModel.UserModel
	reasons  []reasonModel.ReasonModel
	sessions []*attendanceModel.AttendanceModel
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) addUser(email, name, lastName, rut string) userModel.UserModel {
	u := userModel.UserModel{
		UserID:       uuid.New(),
		UserRut:      rut,
		UserEmail:    email,
		UserName:     name,
		UserLastName: lastName,
	}
	m.users = append(m.users, u)
	return u
}

func (m *memStore) addReason(name string) reasonModel.ReasonModel {
	r := reasonModel.ReasonModel{ReasonID: uuid.New(), ReasonName: name}
	m.reasons = append(m.reasons, r)
	return r
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*userModel.UserModel, error) {
	for i := range m.users {
		if m.users[i].UserEmail == email {
			return &m.users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memStore) FindReasonByName(_ context.Context, name string) (*reasonModel.ReasonModel, error) {
	for i := range m.reasons {
		if m.reasons[i].ReasonName == name {
			return &m.reasons[i], nil
		}
	}
	return nil, ErrReasonNotFound
}

func (m *memStore) FindOpenByUser(_ context.Context, userID uuid.UUID) (*attendanceModel.AttendanceModel, error) {
	for _, s := range m.sessions {
		if s.AttendanceUserID == userID && s.AttendanceCheckOut == nil {
			return s, nil
		}
	}
	return nil, ErrNoOpenSession
}

func (m *memStore) Insert(_ context.Context, att *attendanceModel.AttendanceModel) error {
	for _, s := range m.sessions {
		if s.AttendanceUserID == att.AttendanceUserID && s.AttendanceCheckOut == nil {
			return ErrOpenSessionExists
		}
	}
	att.AttendanceID = uuid.New()
	m.sessions = append(m.sessions, att)
	return nil
}

func (m *memStore) SetCheckOut(_ context.Context, attendanceID uuid.UUID, at time.Time) error {
	for _, s := range m.sessions {
		if s.AttendanceID == attendanceID && s.AttendanceCheckOut == nil {
			out := at
			s.AttendanceCheckOut = &out
			return nil
		}
	}
	return ErrNoOpenSession
}

func (m *memStore) ListSessions(_ context.Context, filter SessionFilter) ([]SessionRecord, error) {
	var out []SessionRecord
	for _, s := range m.sessions {
		switch filter {
		case FilterOpen:
			if s.AttendanceCheckOut != nil {
				continue
			}
		case FilterClosed:
			if s.AttendanceCheckOut == nil {
				continue
			}
		}
		out = append(out, m.record(s))
	}
	return out, nil
}

func (m *memStore) ListBetween(_ context.Context, from, to time.Time) ([]SessionRecord, error) {
	var out []SessionRecord
	for _, s := range m.sessions {
		if !s.AttendanceCheckIn.Before(from) && s.AttendanceCheckIn.Before(to) {
			out = append(out, m.record(s))
		}
	}
	return out, nil
}

func (m *memStore) CloseAllOpenBefore(_ context.Context, deadline time.Time) (int64, error) {
	var closed int64
	for _, s := range m.sessions {
		if s.AttendanceCheckOut == nil && !s.AttendanceCheckIn.After(deadline) {
			out := deadline
			s.AttendanceCheckOut = &out
			closed++
		}
	}
	return closed, nil
}

func (m *memStore) record(s *attendanceModel.AttendanceModel) SessionRecord {
	rec := SessionRecord{
		ID:       s.AttendanceID,
		UserID:   s.AttendanceUserID,
		ReasonID: s.AttendanceReasonID,
		CheckIn:  s.AttendanceCheckIn,
		CheckOut: s.AttendanceCheckOut,
	}
	for i := range m.users {
		if m.users[i].UserID == s.AttendanceUserID {
			rec.Email = m.users[i].UserEmail
			rec.Name = m.users[i].UserName
			rec.LastName = m.users[i].UserLastName
			rec.Rut = m.users[i].UserRut
		}
	}
	for i := range m.reasons {
		if m.reasons[i].ReasonID == s.AttendanceReasonID {
			rec.Reason = m.reasons[i].ReasonName
		}
	}
	return rec
}

var _ SessionStore = (*memStore)(nil)

func TestCheckInOpensSession(t *testing.T) {
	store := newMemStore()
	store.addUser("ana@uni.cl", "Ana", "Rojas", "11.111.111-1")
	store.addReason("Study")
	svc := NewSessionService(store)

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	att, err := svc.CheckIn(context.Background(), "ana@uni.cl", "Study", at)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if !att.IsOpen() {
		t.Fatal("new session should be open")
	}
	if !att.AttendanceCheckIn.Equal(at) {
		t.Fatalf("check-in time = %v, want %v", att.AttendanceCheckIn, at)
	}
}

func TestCheckInRejectsSecondOpenSession(t *testing.T) {
	store := newMemStore()
	store.addUser("ana@uni.cl", "Ana", "Rojas", "11.111.111-1")
	store.addReason("Study")
	svc := NewSessionService(store)

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(context.Background(), "ana@uni.cl", "Study", at); err != nil {
		t.Fatalf("first CheckIn: %v", err)
	}
	_, err := svc.CheckIn(context.Background(), "ana@uni.cl", "Study", at.Add(time.Hour))
	if !errors.Is(err, ErrOpenSessionExists) {
		t.Fatalf("second CheckIn err = %v, want ErrOpenSessionExists", err)
	}

	open, _ := store.ListSessions(context.Background(), FilterOpen)
	if len(open) != 1 {
		t.Fatalf("open sessions = %d, want 1", len(open))
	}
}

func TestCheckInUnknownUserAndReason(t *testing.T) {
	store := newMemStore()
	store.addUser("ana@uni.cl", "Ana", "Rojas", "11.111.111-1")
	store.addReason("Study")
	svc := NewSessionService(store)

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(context.Background(), "ghost@uni.cl", "Study", at); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.CheckIn(context.Background(), "ana@uni.cl", "Karaoke", at); !errors.Is(err, ErrReasonNotFound) {
		t.Fatalf("unknown reason err = %v, want ErrReasonNotFound", err)
	}
	// A failed reason lookup must not leave a session behind.
	all, _ := store.ListSessions(context.Background(), FilterAll)
	if len(all) != 0 {
		t.Fatalf("sessions after failed check-ins = %d, want 0", len(all))
	}
}

func TestCheckOutIsNotIdempotent(t *testing.T) {
	store := newMemStore()
	store.addUser("ana@uni.cl", "Ana", "Rojas", "11.111.111-1")
	store.addReason("Study")
	svc := NewSessionService(store)

	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(context.Background(), "ana@uni.cl", "Study", in); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	out := in.Add(2 * time.Hour)
	if err := svc.CheckOut(context.Background(), "ana@uni.cl", out); err != nil {
		t.Fatalf("first CheckOut: %v", err)
	}
	if err := svc.CheckOut(context.Background(), "ana@uni.cl", out.Add(time.Minute)); !errors.Is(err, ErrNoOpenSession) {
		t.Fatalf("second CheckOut err = %v, want ErrNoOpenSession", err)
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	store := newMemStore()
	store.addUser("ana@uni.cl", "Ana", "Rojas", "11.111.111-1")
	svc := NewSessionService(store)

	err := svc.CheckOut(context.Background(), "ana@uni.cl", time.Now())
	if !errors.Is(err, ErrNoOpenSession) {
		t.Fatalf("err = %v, want ErrNoOpenSession", err)
	}
}

func TestSessionLifecycleLists(t *testing.T) {
	store := newMemStore()
	store.addUser("ana@uni.cl", "Ana", "Rojas", "11.111.111-1")
	store.addUser("ben@uni.cl", "Ben", "Soto", "22.222.222-2")
	store.addReason("Study")
	svc := NewSessionService(store)
	ctx := context.Background()

	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(ctx, "ana@uni.cl", "Study", in); err != nil {
		t.Fatalf("CheckIn ana: %v", err)
	}
	if _, err := svc.CheckIn(ctx, "ben@uni.cl", "Study", in.Add(30*time.Minute)); err != nil {
		t.Fatalf("CheckIn ben: %v", err)
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
	if active[0].Email != "ana@uni.cl" || active[0].Reason != "Study" {
		t.Fatalf("unexpected join data: %+v", active[0])
	}

	if err := svc.CheckOut(ctx, "ana@uni.cl", in.Add(time.Hour)); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	active, _ = svc.ListActive(ctx)
	inactive, _ := svc.ListInactive(ctx)
	all, _ := svc.ListAll(ctx)
	if len(active) != 1 || len(inactive) != 1 || len(all) != 2 {
		t.Fatalf("active/inactive/all = %d/%d/%d, want 1/1/2", len(active), len(inactive), len(all))
	}
	if inactive[0].CheckOut == nil {
		t.Fatal("inactive session should carry its check-out")
	}

	// The user can start a fresh session once the previous one is closed.
	if _, err := svc.CheckIn(ctx, "ana@uni.cl", "Study", in.Add(2*time.Hour)); err != nil {
		t.Fatalf("re-CheckIn after CheckOut: %v", err)
	}
}
