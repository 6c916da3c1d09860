package regions

import (
	"log"
	"time"

	"gorm.io/gorm"

	"ktagkk_backend/internals/features/regions/model"
)

type regionSeed struct {
	Name   string
	Code   string
	Diskon float64
	Harga  int64
}

var defaultRegions = []regionSeed{
	{Name: "DKI Jakarta", Code: "JKT", Diskon: 0, Harga: 300000},
	{Name: "Jawa Barat", Code: "JBR", Diskon: 10, Harga: 300000},
	{Name: "Jawa Tengah", Code: "JTG", Diskon: 10, Harga: 250000},
	{Name: "Jawa Timur", Code: "JTM", Diskon: 5, Harga: 275000},
	{Name: "Sumatera Utara", Code: "SUT", Diskon: 15, Harga: 250000},
}

// SeedRegions: region default + harga tahun berjalan. Idempotent per kode.
func SeedRegions(db *gorm.DB) {
	year := int16(time.Now().Year())

	for _, s := range defaultRegions {
		var existing model.RegionModel
		if err := db.Where("region_code = ?", s.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Region '%s' sudah ada, dilewati.", s.Code)
			continue
		}

		region := model.RegionModel{
			RegionName:         s.Name,
			RegionCode:         s.Code,
			RegionDiskonPersen: s.Diskon,
			RegionIsActive:     true,
		}
		if err := db.Create(&region).Error; err != nil {
			log.Printf("❌ Gagal seed region '%s': %v", s.Code, err)
			continue
		}

		price := model.RegionPriceModel{
			RegionPriceRegionID: region.RegionID,
			RegionPriceYear:     year,
			RegionPriceIDR:      s.Harga,
			RegionPriceIsActive: true,
		}
		if err := db.Create(&price).Error; err != nil {
			log.Printf("❌ Gagal seed harga region '%s': %v", s.Code, err)
			continue
		}
		log.Printf("✅ Region '%s' + harga %d berhasil di-seed.", s.Code, year)
	}
}
