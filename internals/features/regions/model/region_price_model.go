package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionPriceModel: harga dasar KTA per (region, tahun).
// Maksimal satu baris aktif per pasangan (region, tahun) —
// dijaga transaksi deactivate-lalu-create di controller harga.
type RegionPriceModel struct {
	RegionPriceID uuid.UUID `gorm:"column:region_price_id;type:uuid;default:gen_random_uuid();primaryKey" json:"region_price_id"`

	RegionPriceRegionID uuid.UUID `gorm:"column:region_price_region_id;type:uuid;not null;index:idx_region_price_region_year" json:"region_price_region_id"`
	RegionPriceYear     int16     `gorm:"column:region_price_year;type:smallint;not null;index:idx_region_price_region_year" json:"region_price_year"`

	RegionPriceIDR      int64 `gorm:"column:region_price_idr;not null" json:"region_price_idr"`
	RegionPriceIsActive bool  `gorm:"column:region_price_is_active;not null;default:true" json:"region_price_is_active"`

	RegionPriceCreatedAt time.Time      `gorm:"column:region_price_created_at;autoCreateTime" json:"region_price_created_at"`
	RegionPriceUpdatedAt *time.Time     `gorm:"column:region_price_updated_at;autoUpdateTime" json:"region_price_updated_at,omitempty"`
	RegionPriceDeletedAt gorm.DeletedAt `gorm:"column:region_price_deleted_at;index" json:"region_price_deleted_at,omitempty"`

	Region *RegionModel `gorm:"foreignKey:RegionPriceRegionID;references:RegionID" json:"-"`
}

func (RegionPriceModel) TableName() string { return "region_prices" }
