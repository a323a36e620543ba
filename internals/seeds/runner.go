package seeds

import (
	"errors"
	"log"

	adminModel "labcontrol_backend/internals/features/users/admins/model"
	authService "labcontrol_backend/internals/features/users/auth/service"
	reasonModel "labcontrol_backend/internals/features/lab/reasons/model"
	roleModel "labcontrol_backend/internals/features/users/roles/model"
	userModel "labcontrol_backend/internals/features/users/users/model"

	"gorm.io/gorm"
)

// RunAllSeeds fills the catalog tables needed for a fresh deployment.
// Every seeder is idempotent; rerunning on an already-seeded database
// is a no-op.
func RunAllSeeds(db *gorm.DB) {
	if err := SeedDefaultReasons(db); err != nil {
		log.Printf("[SEED] reasons failed: %v", err)
	}
	if err := SeedDefaultAdmins(db); err != nil {
		log.Printf("[SEED] admins failed: %v", err)
	}
}

var defaultReasons = []string{
	"Study",
	"Project Work",
	"Tutorial",
	"Meeting",
	"Research",
	"Laboratory Work",
	"General",
}

func SeedDefaultReasons(db *gorm.DB) error {
	for _, name := range defaultReasons {
		var existing reasonModel.ReasonModel
		err := db.Where("reason_name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&reasonModel.ReasonModel{ReasonName: name}).Error; err != nil {
			return err
		}
		log.Printf("[SEED] reason created: %s", name)
	}
	return nil
}

type defaultAdmin struct {
	Rut      string
	Email    string
	Name     string
	LastName string
	Password string
}

var defaultAdmins = []defaultAdmin{
	{Rut: "11.111.111-1", Email: "admin@lab.control", Name: "Admin", LastName: "Lab", Password: "admin123"},
	{Rut: "22.222.222-2", Email: "superAdmin@lab.control", Name: "Super", LastName: "Admin", Password: "superAdmin123"},
}

// SeedDefaultAdmins creates the bootstrap admin accounts plus the
// Administrator role, so the dashboard is reachable before any real
// admin exists.
func SeedDefaultAdmins(db *gorm.DB) error {
	var role roleModel.RoleModel
	err := db.Where("role_name = ?", "Administrator").First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		desc := "Full access to the lab dashboard"
		role = roleModel.RoleModel{RoleName: "Administrator", RoleDescription: &desc}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		log.Println("[SEED] role created: Administrator")
	} else if err != nil {
		return err
	}

	for _, seed := range defaultAdmins {
		if err := seedAdmin(db, role, seed); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, role roleModel.RoleModel, seed defaultAdmin) error {
	var user userModel.UserModel
	err := db.Where("user_email = ?", seed.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = userModel.UserModel{
			UserRut:      seed.Rut,
			UserEmail:    seed.Email,
			UserName:     seed.Name,
			UserLastName: seed.LastName,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var link userModel.UserRoleModel
	err = db.Where("user_role_user_id = ? AND user_role_role_id = ?", user.UserID, role.RoleID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		link = userModel.UserRoleModel{UserRoleUserID: user.UserID, UserRoleRoleID: role.RoleID}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var admin adminModel.AdminModel
	err = db.Where("admin_user_id = ?", user.UserID).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := authService.HashPassword(seed.Password)
	if err != nil {
		return err
	}
	if err := db.Create(&adminModel.AdminModel{
		AdminUserID:   user.UserID,
		AdminPassword: hashed,
	}).Error; err != nil {
		return err
	}
	log.Printf("[SEED] admin created: %s", seed.Email)
	return nil
}
