package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	dto "ktagkk_backend/internals/features/kta/requests/dto"
	helper "ktagkk_backend/internals/helpers"
	"ktagkk_backend/internals/helpers/storage"
)

/* ===================== UPLOAD DOKUMEN (multipart) ===================== */

// POST /kta/requests/:id/upload-ktp  (field file: "ktp")
func (h *KtaRequestController) UploadKTP(c *fiber.Ctx) error {
	return h.uploadDocument(c, "ktp")
}

// POST /kta/requests/:id/upload-foto  (field file: "foto")
func (h *KtaRequestController) UploadFoto(c *fiber.Ctx) error {
	return h.uploadDocument(c, "foto")
}

func (h *KtaRequestController) uploadDocument(c *fiber.Ctx, field string) error {
	_, row, err := h.loadGuarded(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(field)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File "+field+" tidak ditemukan di form")
	}

	url, err := storage.UploadImageWebP("kta/"+field, fh)
	if err != nil {
		log.Printf("[ERROR] upload %s gagal: %v", field, err)
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	column := "kta_request_ktp_url"
	if field == "foto" {
		column = "kta_request_foto_url"
		row.KtaRequestFotoURL = &url
	} else {
		row.KtaRequestKTPURL = &url
	}

	if err := h.DB.Model(row).Update(column, url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan URL dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen "+field+" berhasil diupload", dto.FromModel(*row))
}
