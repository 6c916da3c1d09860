package service

import (
	"math"
	"testing"
)

func TestBasePriceForJenjang(t *testing.T) {
	tests := []struct {
		jenjang int16
		want    int64
	}{
		{1, 100000},
		{3, 100000},
		{6, 100000},
		{7, 300000},
		{8, 300000},
		{9, 300000},
	}
	for _, tt := range tests {
		if got := BasePriceForJenjang(tt.jenjang); got != tt.want {
			t.Errorf("BasePriceForJenjang(%d) = %d, want %d", tt.jenjang, got, tt.want)
		}
	}
}

func TestComputeFinalPrice(t *testing.T) {
	tests := []struct {
		name   string
		base   int64
		diskon float64
		want   int64
	}{
		{"tanpa diskon", 300000, 0, 300000},
		{"jenjang 8 diskon 10", 300000, 10, 270000},
		{"jenjang 3 diskon 10", 100000, 10, 90000},
		{"diskon pecahan dibulatkan ke bawah", 100000, 12.5, 87500},
		{"floor pada hasil tidak bulat", 99999, 33.33, 66669},
		{"diskon penuh", 100000, 100, 0},
		{"diskon di atas 100 dianggap 100", 100000, 150, 0},
		{"diskon negatif dianggap 0", 100000, -5, 100000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFinalPrice(tt.base, tt.diskon); got != tt.want {
				t.Errorf("ComputeFinalPrice(%d, %v) = %d, want %d", tt.base, tt.diskon, got, tt.want)
			}
		})
	}
}

// Properti: hargaFinal == floor(base - base*d/100) untuk semua d di [0,100].
func TestComputeFinalPriceProperty(t *testing.T) {
	bases := []int64{100000, 300000, 99999, 12345}
	for _, base := range bases {
		for d := 0.0; d <= 100.0; d += 0.5 {
			want := int64(math.Floor(float64(base) - float64(base)*d/100.0))
			got := ComputeFinalPrice(base, d)
			// toleransi nol: decimal harus persis sama dengan definisi floor
			if got != want {
				t.Fatalf("base=%d diskon=%v: got %d, want %d", base, d, got, want)
			}
		}
	}
}

func TestComputePricing(t *testing.T) {
	p := ComputePricing(8, 10, 250000)
	if p.HargaBase != 300000 || p.HargaFinal != 270000 || p.HargaRegion != 250000 {
		t.Errorf("ComputePricing(8, 10, 250000) = %+v", p)
	}

	p = ComputePricing(3, 0, 0)
	if p.HargaBase != 100000 || p.HargaFinal != 100000 || p.HargaRegion != 0 {
		t.Errorf("ComputePricing(3, 0, 0) = %+v", p)
	}
}
