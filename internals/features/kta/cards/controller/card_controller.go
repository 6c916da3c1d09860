package controller

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"log"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cardService "ktagkk_backend/internals/features/kta/cards/service"
	requestDto "ktagkk_backend/internals/features/kta/requests/dto"
	requestModel "ktagkk_backend/internals/features/kta/requests/model"
	requestService "ktagkk_backend/internals/features/kta/requests/service"
	helper "ktagkk_backend/internals/helpers"
	authz "ktagkk_backend/internals/helpers/auth"
	"ktagkk_backend/internals/helpers/storage"
)

type CardController struct {
	DB *gorm.DB
}

func NewCardController(db *gorm.DB) *CardController {
	return &CardController{DB: db}
}

var validate = validator.New()

/* ======================= CETAK KARTU ======================= */
// POST /kta/cards/:id/print
// Boleh dicetak ulang — artefak lama ditimpa, PRINTED tetap PRINTED.
func (h *CardController) Print(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	var row requestModel.KtaRequestModel
	if err := h.DB.Where("kta_request_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "KTA request tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !authz.CanAccess(caller, row.KtaRequestRegionID, row.KtaRequestRequestedBy) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mencetak kartu ini")
	}
	if !requestService.Printable(row.KtaRequestStatus) {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Kartu hanya bisa dicetak setelah approval pusat (status sekarang "+string(row.KtaRequestStatus)+")")
	}

	now := time.Now()
	nomor := cardService.CardNumber(now.Year(), row.KtaRequestIDIzin)
	if row.KtaRequestNomorKTA != nil {
		nomor = *row.KtaRequestNomorKTA // cetak ulang pakai nomor lama
	}

	qrPNG, err := cardService.GenerateQR(row.KtaRequestIDIzin)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	qrURL, err := storage.UploadBytes(
		fmt.Sprintf("kta/qr/%s.png", row.KtaRequestIDIzin), "image/png", qrPNG)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan QR: "+err.Error())
	}

	fotoJPEG := h.loadPhotoJPEG(row.KtaRequestFotoURL)

	pdfBytes, err := cardService.RenderCardPDF(cardService.CardData{
		NomorKTA:       nomor,
		Nama:           row.KtaRequestNama,
		IDIzin:         row.KtaRequestIDIzin,
		Jabatan:        row.KtaRequestJabatan,
		Subklasifikasi: row.KtaRequestSubklasifikasi,
		Jenjang:        row.KtaRequestJenjang,
		TahunTerbit:    now.Year(),
		FotoJPEG:       fotoJPEG,
		QRPNG:          qrPNG,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	pdfURL, err := storage.UploadBytes(
		fmt.Sprintf("kta/cards/%s.pdf", row.KtaRequestIDIzin), "application/pdf", pdfBytes)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan PDF kartu: "+err.Error())
	}

	next, err := requestService.Transition(row.KtaRequestStatus, requestService.ActionMarkPrinted)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"kta_request_status":        next,
		"kta_request_nomor_kta":     nomor,
		"kta_request_qr_path":       qrURL,
		"kta_request_card_pdf_path": pdfURL,
		"kta_request_printed_at":    now,
	}
	if err := h.DB.Model(&row).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status cetak")
	}

	row.KtaRequestStatus = next
	row.KtaRequestNomorKTA = &nomor
	row.KtaRequestQRPath = &qrURL
	row.KtaRequestCardPDFPath = &pdfURL
	row.KtaRequestPrintedAt = &now
	return helper.JsonUpdated(c, "Kartu berhasil dicetak", requestDto.FromModel(row))
}

// loadPhotoJPEG: foto di storage tersimpan WebP, dikonversi JPEG untuk PDF.
// Foto yang gagal dimuat tidak membatalkan cetak.
func (h *CardController) loadPhotoJPEG(fotoURL *string) []byte {
	if fotoURL == nil || *fotoURL == "" {
		return nil
	}
	key := storage.ObjectKeyFromURL(*fotoURL)
	if key == "" {
		return nil
	}
	raw, err := storage.GetBytes(key)
	if err != nil {
		log.Printf("[WARN] gagal ambil foto %s: %v", key, err)
		return nil
	}
	img, err := webp.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("[WARN] decode foto webp gagal: %v", err)
		return nil
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil
	}
	return buf.Bytes()
}

/* ======================= EXPORT MASSAL ======================= */

type bulkExportRequest struct {
	KtaRequestIDs []uuid.UUID `json:"kta_request_ids" validate:"required,min=1,dive,required"`
}

// POST /kta/cards/export
// All-or-nothing: satu saja request tanpa artefak → seluruh export gagal
// dengan daftar ID yang belum dicetak.
func (h *CardController) BulkExport(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	if authz.MissingRegion(caller) {
		return fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}

	var req bulkExportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	q := h.DB.Where("kta_request_id IN ?", req.KtaRequestIDs)
	if region, scoped := authz.RegionScoped(caller); scoped {
		q = q.Where("kta_request_region_id = ?", region)
	}
	var rows []requestModel.KtaRequestModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	found := make(map[uuid.UUID]bool, len(rows))
	var missing []string
	for _, r := range rows {
		found[r.KtaRequestID] = true
		if r.KtaRequestCardPDFPath == nil || *r.KtaRequestCardPDFPath == "" {
			missing = append(missing, r.KtaRequestID.String())
		}
	}
	for _, id := range req.KtaRequestIDs {
		if !found[id] {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Artefak kartu belum tersedia untuk: "+strings.Join(missing, ", "))
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, r := range rows {
		data, err := storage.GetBytes(storage.ObjectKeyFromURL(*r.KtaRequestCardPDFPath))
		if err != nil {
			zw.Close()
			return fiber.NewError(fiber.StatusInternalServerError,
				"Gagal ambil artefak "+r.KtaRequestID.String())
		}
		name := exportFilename(r)
		f, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if _, err := f.Write(data); err != nil {
			zw.Close()
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := zw.Close(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="kta-cards-%s.zip"`, time.Now().Format("20060102")))
	return c.Send(buf.Bytes())
}

// Nama file di dalam zip: nomor kartu kalau ada, fallback nama pemegang.
func exportFilename(r requestModel.KtaRequestModel) string {
	base := r.KtaRequestNama
	if r.KtaRequestNomorKTA != nil && *r.KtaRequestNomorKTA != "" {
		base = *r.KtaRequestNomorKTA
	}
	base = strings.NewReplacer("/", "-", "\\", "-", " ", "_").Replace(base)
	return base + ".pdf"
}
