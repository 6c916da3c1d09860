package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegionModel struct {
	RegionID uuid.UUID `gorm:"column:region_id;type:uuid;default:gen_random_uuid();primaryKey" json:"region_id"`

	RegionName string `gorm:"column:region_name;size:120;not null" json:"region_name"`
	RegionCode string `gorm:"column:region_code;size:16;not null;unique" json:"region_code"`

	// Diskon aktif region, persen 0..100
	RegionDiskonPersen float64 `gorm:"column:region_diskon_persen;type:numeric(5,2);not null;default:0" json:"region_diskon_persen"`
	RegionIsActive     bool    `gorm:"column:region_is_active;not null;default:true" json:"region_is_active"`

	RegionCreatedAt time.Time      `gorm:"column:region_created_at;autoCreateTime" json:"region_created_at"`
	RegionUpdatedAt *time.Time     `gorm:"column:region_updated_at;autoUpdateTime" json:"region_updated_at,omitempty"`
	RegionDeletedAt gorm.DeletedAt `gorm:"column:region_deleted_at;index" json:"region_deleted_at,omitempty"`
}

func (RegionModel) TableName() string { return "regions" }
