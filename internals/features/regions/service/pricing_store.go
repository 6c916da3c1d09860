package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktagkk_backend/internals/features/regions/model"
)

// GetActivePrice mencari harga dasar aktif untuk (region, tahun).
// Return (0, false, nil) kalau belum ada harga — penanda "harga belum diset".
func GetActivePrice(db *gorm.DB, regionID uuid.UUID, year int16) (int64, bool, error) {
	var row model.RegionPriceModel
	err := db.
		Where("region_price_region_id = ? AND region_price_year = ? AND region_price_is_active = TRUE",
			regionID, year).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return row.RegionPriceIDR, true, nil
}

// GetDiscount mengambil persen diskon aktif sebuah region.
func GetDiscount(db *gorm.DB, regionID uuid.UUID) (float64, error) {
	var row model.RegionModel
	if err := db.
		Select("region_diskon_persen").
		Where("region_id = ?", regionID).
		First(&row).Error; err != nil {
		return 0, err
	}
	return row.RegionDiskonPersen, nil
}
