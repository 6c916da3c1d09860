package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestModel "ktagkk_backend/internals/features/kta/requests/model"
	scanModel "ktagkk_backend/internals/features/kta/scans/model"
	helper "ktagkk_backend/internals/helpers"
)

type VerifyController struct {
	DB *gorm.DB
}

func NewVerifyController(db *gorm.DB) *VerifyController {
	return &VerifyController{DB: db}
}

type scanEntry struct {
	IP        string    `json:"ip"`
	ScannedAt time.Time `json:"scanned_at"`
}

/* ======================= VERIFIKASI PUBLIK ======================= */
// GET /kta/verify/:id_izin — tanpa auth, dipakai hasil scan QR kartu.
// Hanya field aman yang dipulangkan; NIK, kontak, dan harga tidak keluar.
func (h *VerifyController) VerifyByIDIzin(c *fiber.Ctx) error {
	idIzin := c.Params("id_izin")
	if idIzin == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID izin tidak boleh kosong")
	}

	var row requestModel.KtaRequestModel
	err := h.DB.
		Where("kta_request_id_izin = ?", idIzin).
		First(&row).Error
	if err != nil {
		// Not found tidak meninggalkan jejak scan.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kartu tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	scan := scanModel.QrScanModel{
		QrScanKtaRequestID: row.KtaRequestID,
		QrScanIP:           c.IP(),
		QrScanUserAgent:    string(c.Request().Header.UserAgent()),
	}
	if err := h.DB.Create(&scan).Error; err != nil {
		// log scan gagal tidak boleh menggagalkan verifikasi
		log.Printf("[WARN] gagal catat scan %s: %v", idIzin, err)
	}

	var scanCount int64
	if err := h.DB.Model(&scanModel.QrScanModel{}).
		Where("qr_scan_kta_request_id = ?", row.KtaRequestID).
		Count(&scanCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var recent []scanModel.QrScanModel
	if err := h.DB.
		Where("qr_scan_kta_request_id = ?", row.KtaRequestID).
		Order("qr_scan_created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	entries := make([]scanEntry, 0, len(recent))
	for _, s := range recent {
		entries = append(entries, scanEntry{IP: s.QrScanIP, ScannedAt: s.QrScanCreatedAt})
	}

	return helper.JsonOK(c, "Kartu ditemukan", fiber.Map{
		"id_izin":        row.KtaRequestIDIzin,
		"nama":           row.KtaRequestNama,
		"jabatan":        row.KtaRequestJabatan,
		"subklasifikasi": row.KtaRequestSubklasifikasi,
		"jenjang":        row.KtaRequestJenjang,
		"status":         row.KtaRequestStatus,
		"nomor_kta":      row.KtaRequestNomorKTA,
		"printed_at":     row.KtaRequestPrintedAt,
		"scan_count":     scanCount,
		"recent_scans":   entries,
	})
}
