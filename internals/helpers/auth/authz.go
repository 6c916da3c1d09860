package auth

import (
	"github.com/google/uuid"

	"ktagkk_backend/internals/constants"
)

// Caller merangkum identitas pemanggil dari klaim token.
type Caller struct {
	ID       uuid.UUID
	Role     string
	RegionID *uuid.UUID
}

// CanAccess adalah predicate tunggal untuk akses baris KTA/invoice:
// ADMIN dan PUSAT bebas; DAERAH hanya baris se-region; selain itu
// hanya baris miliknya sendiri. Gagal predicate = 403, bukan 404.
func CanAccess(caller Caller, resourceRegion uuid.UUID, resourceOwner uuid.UUID) bool {
	switch caller.Role {
	case constants.RoleAdmin, constants.RolePusat:
		return true
	case constants.RoleDaerah:
		if caller.RegionID != nil && *caller.RegionID == resourceRegion {
			return true
		}
	}
	return caller.ID != uuid.Nil && caller.ID == resourceOwner
}

// RegionScoped melaporkan apakah query list untuk caller ini wajib
// difilter per region (dan region mana). Caller DAERAH tanpa region
// tidak scoped — cek MissingRegion dulu sebelum jatuh ke cabang bebas.
func RegionScoped(caller Caller) (uuid.UUID, bool) {
	if caller.Role == constants.RoleDaerah && caller.RegionID != nil {
		return *caller.RegionID, true
	}
	return uuid.Nil, false
}

// MissingRegion: DAERAH yang tokennya tidak membawa region tidak boleh
// melihat apa pun — bukan malah lolos ke query tanpa filter.
func MissingRegion(caller Caller) bool {
	return caller.Role == constants.RoleDaerah && caller.RegionID == nil
}
