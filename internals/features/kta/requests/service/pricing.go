package service

import (
	"github.com/shopspring/decimal"
)

// Tarif dasar KTA menurut jenjang sertifikasi.
const (
	HargaJenjangTinggi int64 = 300000 // jenjang ≥ 7
	HargaJenjangRendah int64 = 100000
	BatasJenjangTinggi       = 7
)

// BasePriceForJenjang: tarif dasar dari jenjang.
func BasePriceForJenjang(jenjang int16) int64 {
	if int(jenjang) >= BatasJenjangTinggi {
		return HargaJenjangTinggi
	}
	return HargaJenjangRendah
}

// ComputeFinalPrice: floor(base × (1 − diskon/100)) dalam rupiah bulat.
// Dihitung pakai decimal supaya diskon pecahan (mis. 12.5%) tidak kena
// error pembulatan float.
func ComputeFinalPrice(base int64, diskonPersen float64) int64 {
	if diskonPersen <= 0 {
		return base
	}
	if diskonPersen >= 100 {
		return 0
	}
	d := decimal.NewFromFloat(diskonPersen)
	b := decimal.NewFromInt(base)
	final := b.Sub(b.Mul(d).Div(decimal.NewFromInt(100)))
	return final.Floor().IntPart()
}

// Pricing merangkum field harga turunan pada satu request.
type Pricing struct {
	HargaBase    int64
	DiskonPersen float64
	HargaFinal   int64
	HargaRegion  int64 // 0 = harga region tahun berjalan belum diset
}

func ComputePricing(jenjang int16, diskonPersen float64, hargaRegion int64) Pricing {
	base := BasePriceForJenjang(jenjang)
	return Pricing{
		HargaBase:    base,
		DiskonPersen: diskonPersen,
		HargaFinal:   ComputeFinalPrice(base, diskonPersen),
		HargaRegion:  hargaRegion,
	}
}
