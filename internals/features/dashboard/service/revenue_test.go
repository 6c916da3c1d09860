package service

import (
	"math"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveGranularity(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want Granularity
	}{
		{"satu minggu harian", day(2026, 9, 1), day(2026, 9, 8), GranularityDaily},
		{"tepat satu bulan harian", day(2026, 8, 1), day(2026, 8, 31), GranularityDaily},
		{"tiga bulan mingguan", day(2026, 6, 1), day(2026, 9, 1), GranularityWeekly},
		{"enam bulan mingguan", day(2026, 3, 1), day(2026, 9, 1), GranularityWeekly},
		{"year to date bulanan", day(2026, 1, 1), day(2026, 9, 1), GranularityMonthly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveGranularity(tt.from, tt.to); got != tt.want {
				t.Errorf("ResolveGranularity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBucketStart(t *testing.T) {
	// Rabu 16 Sep 2026, 14:30
	at := time.Date(2026, 9, 16, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		g    Granularity
		want time.Time
	}{
		{"harian ke awal hari", GranularityDaily, day(2026, 9, 16)},
		{"mingguan ke Senin", GranularityWeekly, day(2026, 9, 14)},
		{"bulanan ke tanggal 1", GranularityMonthly, day(2026, 9, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketStart(at, tt.g); !got.Equal(tt.want) {
				t.Errorf("BucketStart = %v, want %v", got, tt.want)
			}
		})
	}

	// Minggu masuk ke minggu yang dimulai Senin sebelumnya
	sunday := time.Date(2026, 9, 20, 8, 0, 0, 0, time.UTC)
	if got := BucketStart(sunday, GranularityWeekly); !got.Equal(day(2026, 9, 14)) {
		t.Errorf("BucketStart(minggu) = %v, want %v", got, day(2026, 9, 14))
	}
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"naik 50 persen", 300, 200, 50},
		{"turun 25 persen", 150, 200, -25},
		{"flat", 200, 200, 0},
		{"baseline nol dengan pemasukan", 500, 0, 100},
		{"baseline nol tanpa pemasukan", 0, 0, 0},
		{"drop total", 0, 400, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthRate(tt.current, tt.previous)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GrowthRate(%d, %d) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	from, to, err := ParseWindow("", "", now)
	if err != nil {
		t.Fatalf("default window error: %v", err)
	}
	if !from.Equal(now.AddDate(0, 0, -30)) || !to.Equal(now) {
		t.Errorf("default window = [%v, %v)", from, to)
	}

	from, to, err = ParseWindow("2026-01-01", "2026-06-30", now)
	if err != nil {
		t.Fatalf("explicit window error: %v", err)
	}
	if !from.Equal(day(2026, 1, 1)) {
		t.Errorf("from = %v", from)
	}
	// to inklusif sampai akhir hari
	if !to.Equal(day(2026, 7, 1)) {
		t.Errorf("to = %v, want %v", to, day(2026, 7, 1))
	}

	if _, _, err := ParseWindow("2026-06-30", "2026-01-01", now); err == nil {
		t.Error("window terbalik harus error")
	}
	if _, _, err := ParseWindow("30-06-2026", "", now); err == nil {
		t.Error("format salah harus error")
	}
}
