package users

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	regionModel "ktagkk_backend/internals/features/regions/model"
	userModel "ktagkk_backend/internals/features/users/user/model"
)

type userSeed struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var coreUsers = []userSeed{
	{Name: "Admin LSP GKK", Email: "admin@lspgkk.or.id", Password: "admin-gkk-2024", Role: constants.RoleAdmin},
	{Name: "Pengurus Pusat", Email: "pusat@lspgkk.or.id", Password: "pusat-gkk-2024", Role: constants.RolePusat},
}

// SeedCoreUsers: akun admin + pusat. Idempotent per email.
func SeedCoreUsers(db *gorm.DB) {
	for _, s := range coreUsers {
		var existing userModel.UserModel
		if err := db.Where("user_email = ?", s.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", s.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password '%s': %v", s.Email, err)
			continue
		}
		row := userModel.UserModel{
			UserName:     s.Name,
			UserEmail:    s.Email,
			UserPassword: string(hash),
			UserRole:     s.Role,
			UserIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal seed user '%s': %v", s.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) berhasil di-seed.", s.Email, s.Role)
	}
}

// SeedDaerahTestUsers: satu akun uji DAERAH per region aktif.
// Hanya subset yang gagal yang dilaporkan di akhir.
func SeedDaerahTestUsers(db *gorm.DB) {
	var regions []regionModel.RegionModel
	if err := db.Where("region_is_active = TRUE").Find(&regions).Error; err != nil {
		log.Printf("❌ Gagal ambil daftar region: %v", err)
		return
	}

	var failed []string
	for _, region := range regions {
		email := fmt.Sprintf("daerah.%s@lspgkk.or.id", strings.ToLower(region.RegionCode))

		var existing userModel.UserModel
		if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword(
			[]byte("daerah-"+strings.ToLower(region.RegionCode)+"-2024"), bcrypt.DefaultCost)
		if err != nil {
			failed = append(failed, email)
			continue
		}

		regionID := region.RegionID
		row := userModel.UserModel{
			UserName:     "Pengurus " + region.RegionName,
			UserEmail:    email,
			UserPassword: string(hash),
			UserRole:     constants.RoleDaerah,
			UserRegionID: &regionID,
			UserIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			failed = append(failed, email)
		}
	}

	if len(failed) > 0 {
		log.Printf("⚠️ Seed user daerah selesai, gagal: %s", strings.Join(failed, ", "))
		return
	}
	log.Printf("✅ Seed user daerah selesai (%d region).", len(regions))
}
