package service

import "fmt"

// CardNumber membentuk nomor KTA dari tahun cetak + ID izin registry.
// ID izin unik per pemegang, jadi nomor kartu ikut unik.
func CardNumber(year int, idIzin string) string {
	return fmt.Sprintf("KTA/LSP-GKK/%d/%s", year, idIzin)
}
