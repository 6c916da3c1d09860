package service

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"ktagkk_backend/internals/configs"
)

// VerifyURL: alamat publik yang dibuka saat QR kartu discan.
func VerifyURL(idIzin string) string {
	return fmt.Sprintf("%s/api/public/kta/verify/%s",
		strings.TrimRight(configs.PublicBaseURL, "/"), idIzin)
}

// GenerateQR merender PNG QR yang menunjuk ke halaman verifikasi publik.
func GenerateQR(idIzin string) ([]byte, error) {
	png, err := qrcode.Encode(VerifyURL(idIzin), qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("generate QR gagal: %w", err)
	}
	return png, nil
}
