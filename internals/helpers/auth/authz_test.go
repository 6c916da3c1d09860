package auth

import (
	"testing"

	"github.com/google/uuid"

	"ktagkk_backend/internals/constants"
)

func TestCanAccess(t *testing.T) {
	regionA := uuid.New()
	regionB := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name     string
		caller   Caller
		region   uuid.UUID
		resOwner uuid.UUID
		want     bool
	}{
		{
			name:   "admin bebas lintas region",
			caller: Caller{ID: stranger, Role: constants.RoleAdmin},
			region: regionA, resOwner: owner, want: true,
		},
		{
			name:   "pusat bebas lintas region",
			caller: Caller{ID: stranger, Role: constants.RolePusat},
			region: regionB, resOwner: owner, want: true,
		},
		{
			name:   "daerah region sama",
			caller: Caller{ID: stranger, Role: constants.RoleDaerah, RegionID: &regionA},
			region: regionA, resOwner: owner, want: true,
		},
		{
			name:   "daerah region beda ditolak",
			caller: Caller{ID: stranger, Role: constants.RoleDaerah, RegionID: &regionA},
			region: regionB, resOwner: owner, want: false,
		},
		{
			name:   "daerah tanpa region ditolak",
			caller: Caller{ID: stranger, Role: constants.RoleDaerah},
			region: regionA, resOwner: owner, want: false,
		},
		{
			name:   "pemilik baris selalu boleh",
			caller: Caller{ID: owner, Role: "ANGGOTA"},
			region: regionB, resOwner: owner, want: true,
		},
		{
			name:   "bukan pemilik, role tidak dikenal",
			caller: Caller{ID: stranger, Role: "ANGGOTA"},
			region: regionB, resOwner: owner, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.caller, tt.region, tt.resOwner); got != tt.want {
				t.Errorf("CanAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegionScoped(t *testing.T) {
	region := uuid.New()

	if _, scoped := RegionScoped(Caller{Role: constants.RolePusat}); scoped {
		t.Error("pusat tidak boleh di-scope per region")
	}
	if _, scoped := RegionScoped(Caller{Role: constants.RoleDaerah}); scoped {
		t.Error("daerah tanpa region tidak boleh dianggap scoped")
	}
	got, scoped := RegionScoped(Caller{Role: constants.RoleDaerah, RegionID: &region})
	if !scoped || got != region {
		t.Errorf("RegionScoped() = (%v,%v), want (%v,true)", got, scoped, region)
	}
}

func TestMissingRegion(t *testing.T) {
	region := uuid.New()

	if !MissingRegion(Caller{Role: constants.RoleDaerah}) {
		t.Error("daerah tanpa region harus dianggap missing")
	}
	if MissingRegion(Caller{Role: constants.RoleDaerah, RegionID: &region}) {
		t.Error("daerah dengan region bukan missing")
	}
	if MissingRegion(Caller{Role: constants.RolePusat}) {
		t.Error("pusat tidak pernah missing region")
	}
	if MissingRegion(Caller{Role: constants.RoleAdmin}) {
		t.Error("admin tidak pernah missing region")
	}
}
