package constants

import "fmt"

// Role user pada sistem KTA
const (
	RoleAdmin  = "ADMIN"  // super admin, akses penuh lintas daerah
	RolePusat  = "PUSAT"  // pengurus pusat, approval nasional
	RoleDaerah = "DAERAH" // pengurus daerah, scoped ke satu region
)

// Template pesan error role
const (
	ErrOnlyPusatCanAccess  = "❌ Hanya pusat atau admin yang boleh mengakses fitur %s."
	ErrOnlyDaerahCanAccess = "❌ Hanya pengurus daerah yang boleh mengakses fitur %s."
	ErrOnlyAdminCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorPusat(feature string) string {
	return fmt.Sprintf(ErrOnlyPusatCanAccess, feature)
}

func RoleErrorDaerah(feature string) string {
	return fmt.Sprintf(ErrOnlyDaerahCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePusat,
		RoleDaerah,
	}

	PusatAndAbove = []string{
		RolePusat,
		RoleAdmin,
	}

	DaerahAndAbove = []string{
		RoleDaerah,
		RolePusat,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
