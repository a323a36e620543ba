package service

import (
	"context"
	"errors"
	"time"

	attendanceModel "labcontrol_backend/internals/features/lab/attendance/model"
	reasonModel "labcontrol_backend/internals/features/lab/reasons/model"
	userModel "labcontrol_backend/internals/features/users/users/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormSessionStore is the Postgres-backed SessionStore.
type GormSessionStore struct {
	DB *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{DB: db}
}

const sessionSelect = `
SELECT a.attendance_id        AS id,
       a.attendance_user_id   AS user_id,
       a.attendance_reason_id AS reason_id,
       a.attendance_check_in  AS check_in,
       a.attendance_check_out AS check_out,
       u.user_email           AS email,
       u.user_name            AS name,
       u.user_last_name       AS last_name,
       u.user_rut             AS rut,
       r.reason_name          AS reason
FROM attendances a
JOIN users   u ON u.user_id   = a.attendance_user_id
JOIN reasons r ON r.reason_id = a.attendance_reason_id`

func (s *GormSessionStore) FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormSessionStore) FindReasonByName(ctx context.Context, name string) (*reasonModel.ReasonModel, error) {
	var reason reasonModel.ReasonModel
	if err := s.DB.WithContext(ctx).Where("reason_name = ?", name).First(&reason).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReasonNotFound
		}
		return nil, err
	}
	return &reason, nil
}

func (s *GormSessionStore) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*attendanceModel.AttendanceModel, error) {
	var att attendanceModel.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_check_out IS NULL", userID).
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenSession
		}
		return nil, err
	}
	return &att, nil
}

func (s *GormSessionStore) Insert(ctx context.Context, att *attendanceModel.AttendanceModel) error {
	if err := s.DB.WithContext(ctx).Create(att).Error; err != nil {
		// The partial unique index closes the check-then-act race between
		// concurrent check-ins; surface it as the same client error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendances_open_per_user" {
			return ErrOpenSessionExists
		}
		return err
	}
	return nil
}

func (s *GormSessionStore) SetCheckOut(ctx context.Context, attendanceID uuid.UUID, at time.Time) error {
	res := s.DB.WithContext(ctx).
		Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_id = ? AND attendance_check_out IS NULL", attendanceID).
		Update("attendance_check_out", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoOpenSession
	}
	return nil
}

func (s *GormSessionStore) ListSessions(ctx context.Context, filter SessionFilter) ([]SessionRecord, error) {
	query := sessionSelect
	switch filter {
	case FilterOpen:
		query += " WHERE a.attendance_check_out IS NULL"
	case FilterClosed:
		query += " WHERE a.attendance_check_out IS NOT NULL"
	}
	query += " ORDER BY a.attendance_check_in ASC"

	var records []SessionRecord
	if err := s.DB.WithContext(ctx).Raw(query).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormSessionStore) ListBetween(ctx context.Context, from, to time.Time) ([]SessionRecord, error) {
	query := sessionSelect +
		" WHERE a.attendance_check_in >= ? AND a.attendance_check_in < ?" +
		" ORDER BY a.attendance_check_in ASC"

	var records []SessionRecord
	if err := s.DB.WithContext(ctx).Raw(query, from, to).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormSessionStore) CloseAllOpenBefore(ctx context.Context, deadline time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_check_out IS NULL AND attendance_check_in <= ?", deadline).
		Update("attendance_check_out", deadline)
	return res.RowsAffected, res.Error
}
