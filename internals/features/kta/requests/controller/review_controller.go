package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	dto "ktagkk_backend/internals/features/kta/requests/dto"
	service "ktagkk_backend/internals/features/kta/requests/service"
	helper "ktagkk_backend/internals/helpers"
)

/* ===================== REVIEW & APPROVAL ===================== */
// Semua endpoint di file ini dipasang di belakang OnlyRoles —
// region scoping tetap dicek lewat loadGuarded.

// POST /kta/requests/:id/review
// DAERAH meneruskan request yang sudah diperiksa ke PUSAT.
func (h *KtaRequestController) RegionalReview(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	next, err := service.Transition(row.KtaRequestStatus, service.ActionRegionalReview)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := h.DB.Model(row).Updates(map[string]interface{}{
		"kta_request_status":             next,
		"kta_request_approved_daerah_at": now,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
	}
	row.KtaRequestStatus = next
	row.KtaRequestApprovedDaerahAt = &now
	return helper.JsonUpdated(c, "Request diteruskan ke PUSAT", dto.FromModel(*row))
}

// POST /kta/requests/:id/approve
// PUSAT menyetujui request hasil review daerah.
func (h *KtaRequestController) PusatApprove(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	next, err := service.Transition(row.KtaRequestStatus, service.ActionPusatApprove)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := h.DB.Model(row).Updates(map[string]interface{}{
		"kta_request_status":            next,
		"kta_request_approved_pusat_at": now,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
	}
	row.KtaRequestStatus = next
	row.KtaRequestApprovedPusatAt = &now
	return helper.JsonUpdated(c, "Request disetujui PUSAT", dto.FromModel(*row))
}

// POST /kta/requests/:id/reject
// Bisa dari tahap review manapun. Status berhenti di REJECTED.
func (h *KtaRequestController) Reject(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	next, err := service.Transition(row.KtaRequestStatus, service.ActionReject)
	if err != nil {
		return err
	}
	if err := h.DB.Model(row).Update("kta_request_status", next).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
	}
	row.KtaRequestStatus = next
	return helper.JsonUpdated(c, "Request ditolak", dto.FromModel(*row))
}

// POST /kta/requests/:id/ready-to-print
// Menandai request approved siap masuk antrian cetak.
func (h *KtaRequestController) MarkReadyToPrint(c *fiber.Ctx) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	next, err := service.Transition(row.KtaRequestStatus, service.ActionMarkReadyToPrint)
	if err != nil {
		return err
	}
	if err := h.DB.Model(row).Update("kta_request_status", next).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
	}
	row.KtaRequestStatus = next
	return helper.JsonUpdated(c, "Request masuk antrian cetak", dto.FromModel(*row))
}
