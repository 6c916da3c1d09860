package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Granularity bucket agregasi revenue.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ResolveGranularity memilih lebar bucket dari panjang window:
// ≤ 31 hari harian, ≤ ~6 bulan mingguan, selebihnya bulanan.
func ResolveGranularity(from, to time.Time) Granularity {
	days := int(to.Sub(from).Hours() / 24)
	switch {
	case days <= 31:
		return GranularityDaily
	case days <= 186:
		return GranularityWeekly
	default:
		return GranularityMonthly
	}
}

// BucketStart memetakan timestamp ke awal bucket-nya.
// Mingguan dihitung dari Senin (ISO).
func BucketStart(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case GranularityWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7 // Senin = 0
		return day.AddDate(0, 0, -offset)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
}

// GrowthRate: (sekarang − sebelumnya) / sebelumnya × 100.
// Baseline nol dengan nilai sekarang > 0 dilaporkan 100 (bukan Inf).
func GrowthRate(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// ParseWindow membaca ?from=&to= (YYYY-MM-DD). Default: 30 hari terakhir.
func ParseWindow(fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	to := now
	from := now.AddDate(0, 0, -30)

	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusUnprocessableEntity,
				"Format to harus YYYY-MM-DD")
		}
		to = t.AddDate(0, 0, 1) // inklusif sampai akhir hari
	}
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusUnprocessableEntity,
				"Format from harus YYYY-MM-DD")
		}
		from = t
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusUnprocessableEntity,
			"from harus sebelum to")
	}
	return from, to, nil
}
