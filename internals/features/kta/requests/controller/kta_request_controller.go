package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	paymentModel "ktagkk_backend/internals/features/kta/payments/model"
	dto "ktagkk_backend/internals/features/kta/requests/dto"
	model "ktagkk_backend/internals/features/kta/requests/model"
	service "ktagkk_backend/internals/features/kta/requests/service"
	regionService "ktagkk_backend/internals/features/regions/service"
	sikiService "ktagkk_backend/internals/features/siki/service"
	helper "ktagkk_backend/internals/helpers"
	authz "ktagkk_backend/internals/helpers/auth"
)

type KtaRequestController struct {
	DB   *gorm.DB
	Siki *sikiService.Client
}

func NewKtaRequestController(db *gorm.DB) *KtaRequestController {
	return &KtaRequestController{DB: db, Siki: sikiService.NewClient()}
}

var validate = validator.New()

/* ======================= CREATE (fetch SIKI) ======================= */
// POST /kta/requests/siki
func (h *KtaRequestController) CreateFromSiki(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateFromSikiRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	regionID, err := h.resolveRegion(caller, req.KtaRequestRegionID)
	if err != nil {
		return err
	}

	rec, raw, err := h.Siki.Lookup(c.UserContext(), req.KtaRequestIDIzin)
	if err != nil {
		return sikiLookupError(err)
	}

	// upsert lookup klasifikasi dari kode registry
	if rec.KodeKlasifikasi != "" {
		if err := sikiService.UpsertClassification(h.DB, rec.KodeKlasifikasi, rec.NamaKlasifikasi); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan klasifikasi")
		}
	}

	row, err := h.buildRow(caller, regionID, model.KtaRequestModel{
		KtaRequestIDIzin:         rec.IDIzin,
		KtaRequestNama:           rec.Nama,
		KtaRequestNIK:            rec.NIK,
		KtaRequestJabatan:        rec.Jabatan,
		KtaRequestSubklasifikasi: rec.Subklasifikasi,
		KtaRequestJenjang:        int16(rec.Jenjang),
		KtaRequestEmail:          rec.Email,
		KtaRequestNoTelepon:      rec.NoTelepon,
		KtaRequestAlamat:         rec.Alamat,
		KtaRequestSikiSnapshot:   []byte(raw),
	})
	if err != nil {
		return err
	}
	if t := parseSikiDate(rec.TanggalRegistrasi); t != nil {
		row.KtaRequestRegisteredAt = t
	}

	if err := h.DB.Create(row).Error; err != nil {
		return createError(err)
	}
	return helper.JsonCreated(c, "KTA request berhasil dibuat dari registry SIKI", dto.FromModel(*row))
}

/* ======================= CREATE (entry manual) ======================= */
// POST /kta/requests/manual
func (h *KtaRequestController) CreateManual(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateManualRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	regionID, err := h.resolveRegion(caller, req.KtaRequestRegionID)
	if err != nil {
		return err
	}

	row, err := h.buildRow(caller, regionID, model.KtaRequestModel{
		KtaRequestIDIzin:         strings.TrimSpace(req.KtaRequestIDIzin),
		KtaRequestNama:           req.KtaRequestNama,
		KtaRequestNIK:            req.KtaRequestNIK,
		KtaRequestJabatan:        req.KtaRequestJabatan,
		KtaRequestSubklasifikasi: req.KtaRequestSubklasifikasi,
		KtaRequestJenjang:        req.KtaRequestJenjang,
		KtaRequestEmail:          req.KtaRequestEmail,
		KtaRequestNoTelepon:      req.KtaRequestNoTelepon,
		KtaRequestAlamat:         req.KtaRequestAlamat,
		KtaRequestKTPURL:         &req.KtaRequestKTPURL,
		KtaRequestFotoURL:        &req.KtaRequestFotoURL,
	})
	if err != nil {
		return err
	}

	if err := h.DB.Create(row).Error; err != nil {
		return createError(err)
	}
	return helper.JsonCreated(c, "KTA request berhasil dibuat", dto.FromModel(*row))
}

// buildRow melengkapi kepemilikan + field harga turunan.
func (h *KtaRequestController) buildRow(caller authz.Caller, regionID uuid.UUID, row model.KtaRequestModel) (*model.KtaRequestModel, error) {
	diskon, err := regionService.GetDiscount(h.DB, regionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Region tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	year := int16(time.Now().Year())
	hargaRegion, _, err := regionService.GetActivePrice(h.DB, regionID, year)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pricing := service.ComputePricing(row.KtaRequestJenjang, diskon, hargaRegion)

	row.KtaRequestRequestedBy = caller.ID
	row.KtaRequestRegionID = regionID
	row.KtaRequestStatus = model.StatusDraft
	row.KtaRequestHargaBase = pricing.HargaBase
	row.KtaRequestDiskonPersen = pricing.DiskonPersen
	row.KtaRequestHargaFinal = pricing.HargaFinal
	row.KtaRequestHargaRegion = pricing.HargaRegion
	return &row, nil
}

// resolveRegion: DAERAH selalu pakai region token; PUSAT/ADMIN wajib
// menyebut region di payload.
func (h *KtaRequestController) resolveRegion(caller authz.Caller, bodyRegion *uuid.UUID) (uuid.UUID, error) {
	if region, scoped := authz.RegionScoped(caller); scoped {
		return region, nil
	}
	if authz.MissingRegion(caller) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}
	if bodyRegion != nil && *bodyRegion != uuid.Nil {
		return *bodyRegion, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnprocessableEntity, "kta_request_region_id wajib diisi")
}

/* ======================== LIST ======================== */
// GET /kta/requests?status=&region_id=&q=&page=&per_page=
func (h *KtaRequestController) List(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	if authz.MissingRegion(caller) {
		return fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}

	base := h.DB.Model(&model.KtaRequestModel{})
	if region, scoped := authz.RegionScoped(caller); scoped {
		base = base.Where("kta_request_region_id = ?", region)
	} else if rid := strings.TrimSpace(c.Query("region_id")); rid != "" {
		base = base.Where("kta_request_region_id = ?", rid)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		if !model.Status(st).Valid() {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Status tidak dikenal: "+st)
		}
		base = base.Where("kta_request_status = ?", st)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("kta_request_nama ILIKE ? OR kta_request_id_izin ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.KtaRequestModel
	if err := base.
		Order("kta_request_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /kta/requests/:id
func (h *KtaRequestController) GetByID(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromModel(*row))
}

/* ======================== UPDATE DOKUMEN ======================== */
// PATCH /kta/requests/:id/documents
func (h *KtaRequestController) UpdateDocuments(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	var req dto.UpdateDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if req.KtaRequestKTPURL != nil {
		row.KtaRequestKTPURL = req.KtaRequestKTPURL
	}
	if req.KtaRequestFotoURL != nil {
		row.KtaRequestFotoURL = req.KtaRequestFotoURL
	}
	if err := h.DB.Save(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen berhasil disimpan", dto.FromModel(*row))
}

/* ======================== REFRESH DARI SIKI ======================== */
// POST /kta/requests/:id/refresh
// Menimpa field identitas saja — status dan harga tidak disentuh.
func (h *KtaRequestController) RefreshFromSiki(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	rec, raw, err := h.Siki.Lookup(c.UserContext(), row.KtaRequestIDIzin)
	if err != nil {
		return sikiLookupError(err)
	}
	if rec.KodeKlasifikasi != "" {
		if err := sikiService.UpsertClassification(h.DB, rec.KodeKlasifikasi, rec.NamaKlasifikasi); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan klasifikasi")
		}
	}

	row.KtaRequestNama = rec.Nama
	row.KtaRequestNIK = rec.NIK
	row.KtaRequestJabatan = rec.Jabatan
	row.KtaRequestSubklasifikasi = rec.Subklasifikasi
	row.KtaRequestJenjang = int16(rec.Jenjang)
	row.KtaRequestEmail = rec.Email
	row.KtaRequestNoTelepon = rec.NoTelepon
	row.KtaRequestAlamat = rec.Alamat
	row.KtaRequestSikiSnapshot = []byte(raw)

	if err := h.DB.Save(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal refresh data")
	}
	return helper.JsonUpdated(c, "Data identitas berhasil di-refresh dari SIKI", dto.FromModel(*row))
}

/* ======================== DELETE ======================== */
// DELETE /kta/requests/:id
// Guard: status masih pre-review DAN belum punya baris payment.
func (h *KtaRequestController) Delete(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	// Lock barisnya dulu supaya cek "belum masuk invoice" tidak balapan
	// dengan CreateInvoice yang juga mengunci baris request.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var locked model.KtaRequestModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "kta_request_id = ?", row.KtaRequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "KTA request tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		if !service.Deletable(locked.KtaRequestStatus) {
			return fiber.NewError(fiber.StatusPreconditionFailed,
				"Request dengan status "+string(locked.KtaRequestStatus)+" tidak bisa dihapus")
		}

		var paymentCount int64
		if err := tx.Model(&paymentModel.PaymentModel{}).
			Where("payment_kta_request_id = ?", locked.KtaRequestID).
			Count(&paymentCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if paymentCount > 0 {
			return fiber.NewError(fiber.StatusPreconditionFailed,
				"Request sudah masuk invoice, tidak bisa dihapus")
		}

		if err := tx.Delete(&locked).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus request")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonDeleted(c, "KTA request berhasil dihapus", fiber.Map{
		"kta_request_id": row.KtaRequestID,
	})
}

/* ======================== SUBMIT (dua jalur) ======================== */

// POST /kta/requests/:id/submit-approval
// Jalur self-service: wajib dokumen lengkap + payment berstatus PAID.
func (h *KtaRequestController) SubmitForApproval(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	if row.KtaRequestKTPURL == nil || row.KtaRequestFotoURL == nil {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Dokumen KTP dan foto wajib diupload sebelum submit")
	}

	var paid int64
	if err := h.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_kta_request_id = ? AND payment_status IN ?",
			row.KtaRequestID,
			[]paymentModel.PaymentStatus{paymentModel.PaymentStatusPaid, paymentModel.PaymentStatusVerified}).
		Count(&paid).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if paid == 0 {
		return fiber.NewError(fiber.StatusPreconditionFailed,
			"Pembayaran belum lunas, submit belum bisa dilakukan")
	}

	next, err := service.Transition(row.KtaRequestStatus, service.ActionSubmitApproval)
	if err != nil {
		return err
	}
	if err := h.DB.Model(row).Update("kta_request_status", next).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
	}
	row.KtaRequestStatus = next
	return helper.JsonUpdated(c, "Request diajukan untuk approval", dto.FromModel(*row))
}

// POST /kta/requests/:id/submit-invoicing
// Jalur bulk invoice: tanpa guard tambahan, langsung WAITING_PAYMENT.
func (h *KtaRequestController) SubmitForInvoicing(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	next, err := service.Transition(row.KtaRequestStatus, service.ActionSubmitInvoicing)
	if err != nil {
		return err
	}
	if err := h.DB.Model(row).Update("kta_request_status", next).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
	}
	row.KtaRequestStatus = next
	return helper.JsonUpdated(c, "Request siap masuk invoice", dto.FromModel(*row))
}

/* ======================== shared ======================== */

// loadGuarded: ambil row by :id + jalankan predicate akses.
// Gagal predicate = 403, bukan 404.
func (h *KtaRequestController) loadGuarded(c *fiber.Ctx) (authz.Caller, *model.KtaRequestModel, error) {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return authz.Caller{}, nil, err
	}

	id := c.Params("id")
	if id == "" {
		return caller, nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.KtaRequestModel
	if err := h.DB.Where("kta_request_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return caller, nil, fiber.NewError(fiber.StatusNotFound, "KTA request tidak ditemukan")
		}
		return caller, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !authz.CanAccess(caller, row.KtaRequestRegionID, row.KtaRequestRequestedBy) {
		return caller, nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengakses request ini")
	}
	return caller, &row, nil
}

func createError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
		return fiber.NewError(fiber.StatusConflict, "ID izin sudah terdaftar")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat KTA request")
}

func sikiLookupError(err error) error {
	switch {
	case errors.Is(err, sikiService.ErrMalformedID):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, sikiService.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, sikiService.ErrExpired):
		return fiber.NewError(fiber.StatusPreconditionFailed, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadGateway, sikiService.ErrUnreachable.Error())
	}
}

func parseSikiDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
