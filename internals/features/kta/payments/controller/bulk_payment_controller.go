package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "ktagkk_backend/internals/features/kta/payments/dto"
	model "ktagkk_backend/internals/features/kta/payments/model"
	service "ktagkk_backend/internals/features/kta/payments/service"
	requestModel "ktagkk_backend/internals/features/kta/requests/model"
	requestService "ktagkk_backend/internals/features/kta/requests/service"
	helper "ktagkk_backend/internals/helpers"
	authz "ktagkk_backend/internals/helpers/auth"
	"ktagkk_backend/internals/helpers/storage"
)

type BulkPaymentController struct {
	DB *gorm.DB
}

func NewBulkPaymentController(db *gorm.DB) *BulkPaymentController {
	return &BulkPaymentController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE INVOICE ======================= */
// POST /kta/payments/invoices
// Seluruh langkah (load scoped, cek count, cek payment existing, cek nominal,
// scan sequence, insert header + lines) jalan dalam SATU transaction.
func (h *BulkPaymentController) CreateInvoice(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	regionID, err := resolveRegion(caller, req.BulkPaymentRegionID)
	if err != nil {
		return err
	}

	var created model.BulkPaymentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// 1. Load request yang di-invoice, dikunci sampai commit.
		var rows []requestModel.KtaRequestModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("kta_request_id IN ? AND kta_request_region_id = ? AND kta_request_status IN ?",
				req.KtaRequestIDs, regionID, requestService.InvoiceableStatuses()).
			Find(&rows).Error; err != nil {
			return err
		}

		// 2. Semua ID harus ketemu, region cocok, dan statusnya bisa di-invoice.
		if len(rows) != len(req.KtaRequestIDs) {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"Sebagian request tidak ditemukan, beda region, atau statusnya tidak bisa di-invoice")
		}

		// 3. Tidak boleh ada yang sudah punya baris payment.
		var already int64
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_kta_request_id IN ?", req.KtaRequestIDs).
			Count(&already).Error; err != nil {
			return err
		}
		if already > 0 {
			return fiber.NewError(fiber.StatusConflict,
				"Sebagian request sudah masuk invoice lain")
		}

		// 4. Total nominal tidak boleh nol.
		var total int64
		for _, r := range rows {
			total += r.KtaRequestHargaFinal
		}
		if total <= 0 {
			return fiber.NewError(fiber.StatusPreconditionFailed,
				"Total invoice Rp 0, periksa harga request")
		}

		// 5. Nomor invoice sequential per periode, di-scan dalam tx.
		// Race antar tx tetap tertangkap unique constraint invoice_number.
		now := time.Now()
		var existing []string
		if err := tx.Model(&model.BulkPaymentModel{}).
			Where("bulk_payment_invoice_number LIKE ?", service.InvoicePeriodPrefix(now)+"%").
			Pluck("bulk_payment_invoice_number", &existing).Error; err != nil {
			return err
		}

		created = model.BulkPaymentModel{
			BulkPaymentInvoiceNumber: service.NextInvoiceNumber(now, existing),
			BulkPaymentRegionID:      regionID,
			BulkPaymentSubmittedBy:   caller.ID,
			BulkPaymentTotalJumlah:   len(rows),
			BulkPaymentTotalNominal:  total,
			BulkPaymentStatus:        model.PaymentStatusPending,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		lines := make([]model.PaymentModel, 0, len(rows))
		for _, r := range rows {
			lines = append(lines, model.PaymentModel{
				PaymentKtaRequestID:  r.KtaRequestID,
				PaymentBulkPaymentID: created.BulkPaymentID,
				PaymentJumlah:        r.KtaRequestHargaFinal,
				PaymentStatus:        model.PaymentStatusPending,
			})
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		created.Payments = lines
		return nil
	})
	if txErr != nil {
		return invoiceError(txErr)
	}

	log.Printf("[INFO] invoice %s dibuat (%d request, Rp %d)",
		created.BulkPaymentInvoiceNumber, created.BulkPaymentTotalJumlah, created.BulkPaymentTotalNominal)
	return helper.JsonCreated(c, "Invoice berhasil dibuat", dto.FromModel(created))
}

/* ======================= UPLOAD BUKTI BAYAR ======================= */
// POST /kta/payments/invoices/:id/proof  (field file: "proof")
func (h *BulkPaymentController) UploadProof(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	if row.BulkPaymentStatus != model.PaymentStatusPending {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Bukti bayar hanya bisa diupload saat invoice PENDING")
	}

	fh, err := c.FormFile("proof")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File proof tidak ditemukan di form")
	}
	url, err := storage.UploadImageWebP("payments/proof", fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	now := time.Now()
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(row).Updates(map[string]interface{}{
			"bulk_payment_status":    model.PaymentStatusPaid,
			"bulk_payment_proof_url": url,
			"bulk_payment_paid_at":   now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_bulk_payment_id = ?", row.BulkPaymentID).
			Update("payment_status", model.PaymentStatusPaid).Error; err != nil {
			return err
		}
		// Member request dipastikan WAITING_PAYMENT sampai verifikasi pusat.
		return tx.Model(&requestModel.KtaRequestModel{}).
			Where("kta_request_id IN (?)",
				tx.Model(&model.PaymentModel{}).
					Select("payment_kta_request_id").
					Where("payment_bulk_payment_id = ?", row.BulkPaymentID)).
			Update("kta_request_status", requestModel.StatusWaitingPayment).Error
	})
	if txErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan bukti bayar")
	}

	row.BulkPaymentStatus = model.PaymentStatusPaid
	row.BulkPaymentProofURL = &url
	row.BulkPaymentPaidAt = &now
	return helper.JsonUpdated(c, "Bukti bayar berhasil diupload", dto.FromModel(*row))
}

/* ======================= VERIFIKASI ======================= */
// POST /kta/payments/invoices/:id/verify — PUSAT/ADMIN.
// VERIFIED mengalirkan member request ke tahap konfirmasi pusat.
func (h *BulkPaymentController) Verify(c *fiber.Ctx) error {
	caller, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	if row.BulkPaymentStatus != model.PaymentStatusPaid {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Invoice hanya bisa diverifikasi setelah bukti bayar diupload (PAID)")
	}

	now := time.Now()
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(row).Updates(map[string]interface{}{
			"bulk_payment_status":      model.PaymentStatusVerified,
			"bulk_payment_verified_by": caller.ID,
			"bulk_payment_verified_at": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_bulk_payment_id = ?", row.BulkPaymentID).
			Update("payment_status", model.PaymentStatusVerified).Error; err != nil {
			return err
		}
		return tx.Model(&requestModel.KtaRequestModel{}).
			Where("kta_request_status = ? AND kta_request_id IN (?)",
				requestModel.StatusWaitingPayment,
				tx.Model(&model.PaymentModel{}).
					Select("payment_kta_request_id").
					Where("payment_bulk_payment_id = ?", row.BulkPaymentID)).
			Updates(map[string]interface{}{
				"kta_request_status":             requestModel.StatusReadyForPusat,
				"kta_request_approved_daerah_at": now,
			}).Error
	})
	if txErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal verifikasi invoice")
	}

	row.BulkPaymentStatus = model.PaymentStatusVerified
	row.BulkPaymentVerifiedBy = &caller.ID
	row.BulkPaymentVerifiedAt = &now
	return helper.JsonUpdated(c, "Invoice terverifikasi", dto.FromModel(*row))
}

/* ======================= TOLAK ======================= */
// POST /kta/payments/invoices/:id/reject — PUSAT/ADMIN.
// Lines dihapus permanen supaya unique kta_request_id lepas dan
// request bisa di-invoice ulang. Header disimpan sebagai jejak REJECTED.
func (h *BulkPaymentController) Reject(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	if row.BulkPaymentStatus == model.PaymentStatusVerified {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Invoice yang sudah VERIFIED tidak bisa ditolak")
	}
	if row.BulkPaymentStatus == model.PaymentStatusRejected {
		return fiber.NewError(fiber.StatusPreconditionFailed, "Invoice sudah ditolak")
	}

	var req dto.RejectBulkPaymentRequest
	_ = c.BodyParser(&req) // alasan opsional

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(row).
			Update("bulk_payment_status", model.PaymentStatusRejected).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("payment_bulk_payment_id = ?", row.BulkPaymentID).
			Delete(&model.PaymentModel{}).Error
	})
	if txErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal tolak invoice")
	}

	row.BulkPaymentStatus = model.PaymentStatusRejected
	msg := "Invoice ditolak"
	if strings.TrimSpace(req.Alasan) != "" {
		msg = "Invoice ditolak: " + req.Alasan
	}
	return helper.JsonUpdated(c, msg, dto.FromModel(*row))
}

/* ======================= LIST & DETAIL ======================= */
// GET /kta/payments/invoices?status=&region_id=&page=&per_page=
func (h *BulkPaymentController) List(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	if authz.MissingRegion(caller) {
		return fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}

	base := h.DB.Model(&model.BulkPaymentModel{})
	if region, scoped := authz.RegionScoped(caller); scoped {
		base = base.Where("bulk_payment_region_id = ?", region)
	} else if rid := strings.TrimSpace(c.Query("region_id")); rid != "" {
		base = base.Where("bulk_payment_region_id = ?", rid)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		base = base.Where("bulk_payment_status = ?", st)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.BulkPaymentModel
	if err := base.
		Order("bulk_payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /kta/payments/invoices/:id — lines ikut dimuat.
func (h *BulkPaymentController) GetByID(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}
	if err := h.DB.
		Where("payment_bulk_payment_id = ?", row.BulkPaymentID).
		Find(&row.Payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(*row))
}

/* ======================== shared ======================== */

func (h *BulkPaymentController) loadGuarded(c *fiber.Ctx) (authz.Caller, *model.BulkPaymentModel, error) {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return authz.Caller{}, nil, err
	}

	id := c.Params("id")
	if id == "" {
		return caller, nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.BulkPaymentModel
	if err := h.DB.Where("bulk_payment_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return caller, nil, fiber.NewError(fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return caller, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !authz.CanAccess(caller, row.BulkPaymentRegionID, row.BulkPaymentSubmittedBy) {
		return caller, nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengakses invoice ini")
	}
	return caller, &row, nil
}

func resolveRegion(caller authz.Caller, bodyRegion *uuid.UUID) (uuid.UUID, error) {
	if region, scoped := authz.RegionScoped(caller); scoped {
		return region, nil
	}
	if authz.MissingRegion(caller) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}
	if bodyRegion != nil && *bodyRegion != uuid.Nil {
		return *bodyRegion, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnprocessableEntity, "bulk_payment_region_id wajib diisi")
}

func invoiceError(err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
		return fiber.NewError(fiber.StatusConflict,
			"Nomor invoice atau request bentrok, silakan coba lagi")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat invoice")
}
