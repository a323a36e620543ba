package database

import (
	"log"

	attendanceModel "labcontrol_backend/internals/features/lab/attendance/model"
	instanceModel "labcontrol_backend/internals/features/lab/instances/model"
	reasonModel "labcontrol_backend/internals/features/lab/reasons/model"
	adminModel "labcontrol_backend/internals/features/users/admins/model"
	authModel "labcontrol_backend/internals/features/users/auth/model"
	careerModel "labcontrol_backend/internals/features/users/careers/model"
	roleModel "labcontrol_backend/internals/features/users/roles/model"
	userModel "labcontrol_backend/internals/features/users/users/model"

	"gorm.io/gorm"
)

// Migrate creates/updates the schema and the constraints GORM tags cannot
// express.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&roleModel.RoleModel{},
		&careerModel.CareerModel{},
		&userModel.UserRoleModel{},
		&userModel.UserCareerModel{},
		&adminModel.AdminModel{},
		&authModel.TokenModel{},
		&reasonModel.ReasonModel{},
		&attendanceModel.AttendanceModel{},
		&instanceModel.InstanceModel{},
	); err != nil {
		log.Fatalf("[DB] migration failed: %v", err)
	}

	// At most one open session per user. The session service also checks
	// before inserting, but only this index closes the check-then-act race
	// between concurrent check-ins.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_attendances_open_per_user
		ON attendances (attendance_user_id)
		WHERE attendance_check_out IS NULL
	`).Error; err != nil {
		log.Fatalf("[DB] open-session index failed: %v", err)
	}

	log.Println("[DB] migration complete.")
}
